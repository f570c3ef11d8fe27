package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/apiref"
	"github.com/fwojciec/apiref/fs"
	"github.com/fwojciec/apiref/jsonschema"
	refslog "github.com/fwojciec/apiref/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loader over the project root, set during Run.
	Loader *fs.Loader

	// Config in effect, set during Run.
	Config Config
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("apiref"),
		kong.Description("Resolve {@inheritdoc} references against installed *.api.json manifests."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'apiref --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigFor(cli.Root, cli.Config)
	if err != nil {
		return err
	}
	m.Config = cfg

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	validator, err := jsonschema.NewValidator(cfg.ToolName)
	if err != nil {
		return fmt.Errorf("failed to load manifest schema: %w", err)
	}

	m.Loader, err = fs.NewLoader(cli.Root, validator)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Run apiref from a project directory or set APIREF_ROOT")
		return err
	}
	m.Loader.KeyMode = cfg.CacheKeyMode

	packages := refslog.NewLoggingPackageLoader(m.Loader, logger)
	deps.Config = cfg
	deps.Logger = logger
	deps.Packages = packages
	deps.Manifests = m.Loader
	deps.Resolver = apiref.NewResolver(packages)

	return kongCtx.Run(deps)
}

// loadConfigFor loads the explicit config file, or <root>/apiref.toml when
// present. Defaults apply when neither exists.
func loadConfigFor(root, path string) (Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	path = filepath.Join(root, DefaultConfigFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
