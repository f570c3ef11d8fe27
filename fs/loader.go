// Package fs loads *.api.json manifests from a project's node_modules tree.
package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/apiref"
	"golang.org/x/sync/singleflight"
)

// Layout of the project tree searched for manifests.
const (
	MarkerFile     = "package.json"
	ModulesDir     = "node_modules"
	ManifestDir    = "dist"
	ManifestSuffix = ".api.json"
)

// CacheKeyMode selects how loaded packages are keyed in the cache.
type CacheKeyMode string

const (
	// CacheKeyCanonical looks up and stores packages under
	// Reference.CacheKey.
	CacheKeyCanonical CacheKeyMode = "canonical"

	// CacheKeyFileName looks up packages under Reference.CacheKey but stores
	// them under the manifest's file name. Scoped packages never hit the
	// cache in this mode and are reloaded on every reference.
	CacheKeyFileName CacheKeyMode = "filename"
)

// ParseCacheKeyMode parses a mode name. An empty name is canonical.
func ParseCacheKeyMode(s string) (CacheKeyMode, error) {
	switch mode := CacheKeyMode(strings.TrimSpace(s)); mode {
	case "", CacheKeyCanonical:
		return CacheKeyCanonical, nil
	case CacheKeyFileName:
		return mode, nil
	default:
		return "", apiref.Errorf(apiref.EINVALID, "unknown cache key mode %q (want %q or %q)", s, CacheKeyCanonical, CacheKeyFileName)
	}
}

// ManifestPath returns where the manifest of the referenced package lives:
// <root>/node_modules/<scope>/<package>/dist/<package>.api.json.
func ManifestPath(root string, ref apiref.Reference) string {
	return filepath.Join(root, ModulesDir, ref.ScopeName, ref.PackageName, ManifestDir, ref.PackageName+ManifestSuffix)
}

// FileNameKey derives a cache key from a manifest path by stripping every
// extension from its base name: "dist/foo.api.json" becomes "foo".
func FileNameKey(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// NotFoundMessage is reported when a referenced package has no manifest.
func NotFoundMessage(packageName string) string {
	return fmt.Sprintf("@inheritdoc referenced package (%q) not found in node modules.", packageName)
}

// Ensure Loader implements apiref.PackageLoader at compile time.
var _ apiref.PackageLoader = (*Loader)(nil)

// Loader implements apiref.PackageLoader over a project root. Each package is
// read and validated at most once; the result is cached for the lifetime of
// the Loader.
type Loader struct {
	// KeyMode selects the cache key strategy. Set before first use.
	KeyMode CacheKeyMode

	root      string
	validator apiref.ManifestValidator
	cache     *apiref.PackageCache
	group     singleflight.Group
}

// NewLoader returns a Loader for the project rooted at root.
// Returns ENOTFOUND if root does not contain package.json.
func NewLoader(root string, validator apiref.ManifestValidator) (*Loader, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}

	info, err := os.Stat(filepath.Join(abs, MarkerFile))
	if err != nil || info.IsDir() {
		return nil, apiref.Errorf(apiref.ENOTFOUND, "project root %q does not contain %s", abs, MarkerFile)
	}

	return &Loader{
		KeyMode:   CacheKeyCanonical,
		root:      abs,
		validator: validator,
		cache:     apiref.NewPackageCache(),
	}, nil
}

// Root returns the absolute project root.
func (l *Loader) Root() string {
	return l.root
}

// Cache returns the cache owned by the loader.
func (l *Loader) Cache() *apiref.PackageCache {
	return l.cache
}

// loadResult is shared between callers coalesced on one cache key.
type loadResult struct {
	pkg     *apiref.DocPackage
	missing bool
}

func (l *Loader) GetPackage(ref apiref.Reference, report apiref.ReportFunc) (*apiref.DocPackage, error) {
	key := ref.CacheKey()
	if pkg, ok := l.cache.Get(key); ok {
		return pkg, nil
	}

	if ref.IsLocal() {
		return nil, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		if pkg, ok := l.cache.Get(key); ok {
			return loadResult{pkg: pkg}, nil
		}

		path := ManifestPath(l.root, ref)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return loadResult{missing: true}, nil
			}
			return nil, fmt.Errorf("failed to stat manifest %q: %w", path, err)
		}

		if l.KeyMode == CacheKeyFileName {
			pkg, err := l.LoadPackageIntoCache(path)
			return loadResult{pkg: pkg}, err
		}

		pkg, err := l.loadManifest(path)
		if err != nil {
			return nil, err
		}
		pkg.Name = key
		return loadResult{pkg: l.cache.Put(key, pkg)}, nil
	})
	if err != nil {
		return nil, err
	}

	res := v.(loadResult)
	if res.missing {
		report.Report(NotFoundMessage(ref.PackageName))
		return nil, nil
	}
	return res.pkg, nil
}

// LoadPackageIntoCache reads, parses, and validates the manifest at path,
// then caches it under its file name key and returns it. A package loaded
// from another path under the same key is replaced. Returns ENOTFOUND if
// the file does not exist; a malformed or schema-invalid manifest is a fatal
// EINVALID error.
func (l *Loader) LoadPackageIntoCache(path string) (*apiref.DocPackage, error) {
	pkg, err := l.loadManifest(path)
	if err != nil {
		return nil, err
	}
	pkg.Name = FileNameKey(path)
	return l.cache.Replace(pkg.Name, pkg), nil
}

func (l *Loader) loadManifest(path string) (*apiref.DocPackage, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apiref.Errorf(apiref.ENOTFOUND, "manifest %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, apiref.Errorf(apiref.EINVALID, "failed to parse manifest %q: %v", path, err)
	}

	if err := l.validator.ValidateManifest(doc); err != nil {
		return nil, fmt.Errorf("invalid manifest %q: %w", path, err)
	}

	var pkg apiref.DocPackage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, apiref.Errorf(apiref.EINVALID, "failed to decode manifest %q: %v", path, err)
	}
	pkg.Path = path
	pkg.ContentHash = fmt.Sprintf("%x", xxhash.Sum64(data))
	return &pkg, nil
}
