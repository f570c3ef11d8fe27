package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/apiref"
)

// ManifestLoader loads a manifest file directly, bypassing reference lookup.
type ManifestLoader interface {
	LoadPackageIntoCache(path string) (*apiref.DocPackage, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    Config
	Packages  apiref.PackageLoader
	Manifests ManifestLoader
	Resolver  *apiref.Resolver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `help:"Project root containing package.json" env:"APIREF_ROOT" default:"."`
	Config  string `help:"Config file (defaults to <root>/apiref.toml when present)" env:"APIREF_CONFIG"`
	Verbose bool   `short:"v" help:"Log package loads to stderr"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve references to documentation items"`
	Exports  ExportsCmd  `cmd:"" help:"List the exports of a package"`
	Members  MembersCmd  `cmd:"" help:"List the members of a class or interface"`
	Validate ValidateCmd `cmd:"" help:"Validate manifest files against api-json-schema.json"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Refs   []string `arg:"" help:"References such as @scope/package:Export.member"`
	Strict bool     `help:"Fail when any reference is unresolved"`
}

// ExportsCmd is the "exports" subcommand.
type ExportsCmd struct {
	Package string `arg:"" help:"Package name such as @scope/package"`
}

// MembersCmd is the "members" subcommand.
type MembersCmd struct {
	Ref string `arg:"" help:"Reference to a class or interface such as package:Export"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Paths []string `arg:"" help:"Manifest files to validate"`
}
