package apiref

import "sync"

// PackageCache holds loaded packages by cache key for the lifetime of its
// owner. There is no eviction and no invalidation.
type PackageCache struct {
	mu       sync.RWMutex
	packages map[string]*DocPackage
}

// NewPackageCache returns an empty cache.
func NewPackageCache() *PackageCache {
	return &PackageCache{packages: make(map[string]*DocPackage)}
}

// Get returns the package stored under key.
func (c *PackageCache) Get(key string) (*DocPackage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pkg, ok := c.packages[key]
	return pkg, ok
}

// Put stores pkg under key and returns the instance now cached there.
// The first instance stored under a key wins.
func (c *PackageCache) Put(key string, pkg *DocPackage) *DocPackage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.packages[key]; ok {
		return existing
	}
	c.packages[key] = pkg
	return pkg
}

// Len returns the number of cached packages.
func (c *PackageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.packages)
}

// Replace stores pkg under key and returns it, overwriting a package loaded
// from a different path. A package already cached from the same path is
// kept and returned instead.
func (c *PackageCache) Replace(key string, pkg *DocPackage) *DocPackage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.packages[key]; ok && existing.Path == pkg.Path {
		return existing
	}
	c.packages[key] = pkg
	return pkg
}
