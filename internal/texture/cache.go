package texture

import (
	"sync"

	"github.com/seui-engine/raytracing-csg-renderer/internal/rterr"
)

// Loader decodes an Image from a file path. Concrete implementations
// (png, tga, webp, bmp, ...) live in loaders.go.
type Loader interface {
	Load(path string) (Image, error)
}

// Cache memoizes decoded Images by path with reference counting, so
// the same file backing two primitives is decoded once and shared
// read-only: a sync.RWMutex-guarded map with a per-entry reference
// count.
type Cache struct {
	mu       sync.RWMutex
	loader   Loader
	entries  map[string]Image
	refCount map[string]int
}

// NewCache builds an empty cache backed by loader.
func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:   loader,
		entries:  make(map[string]Image),
		refCount: make(map[string]int),
	}
}

// Get returns the cached Image for path, decoding and caching it on
// first use. Safe for concurrent callers, but intended to be called
// only during scene build: the cache is read-only during the parallel
// render phase.
func (c *Cache) Get(path string) (Image, error) {
	c.mu.RLock()
	if img, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		c.mu.Lock()
		c.refCount[path]++
		c.mu.Unlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := c.loader.Load(path)
	if err != nil {
		return nil, rterr.NewIOError(path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[path]; ok {
		// Lost the race to decode; use the winner's handle.
		c.refCount[path]++
		return existing, nil
	}
	c.entries[path] = img
	c.refCount[path] = 1
	return img, nil
}

// Stats reports the number of distinct decoded images and the total
// reference count across all paths, for diagnostics/logging.
func (c *Cache) Stats() (distinct, refs int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	distinct = len(c.entries)
	for _, n := range c.refCount {
		refs += n
	}
	return distinct, refs
}
