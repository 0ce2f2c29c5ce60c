package store

import (
	"sync"

	"github.com/provenart/go-art-registry/models"
)

// Cache is the client's in-memory view of the ledger: the full set of
// artworks produced by the most recent refresh. Snapshots are replaced
// wholesale, so readers never observe a half-applied refresh; concurrent
// refreshes race and the last replacement wins.
type Cache struct {
	mu       sync.RWMutex
	artworks []models.Artwork
	byID     map[string]int
}

// NewCache returns an empty artwork cache.
func NewCache() *Cache {
	return &Cache{byID: make(map[string]int)}
}

// ReplaceAll swaps the entire cache contents for artworks in one step.
// The slice is copied, so the caller may keep mutating its own copy.
func (c *Cache) ReplaceAll(artworks []models.Artwork) {
	snapshot := make([]models.Artwork, len(artworks))
	copy(snapshot, artworks)

	index := make(map[string]int, len(snapshot))
	for i, a := range snapshot {
		index[a.ID] = i
	}

	c.mu.Lock()
	c.artworks = snapshot
	c.byID = index
	c.mu.Unlock()
}

// All returns a copy of the current snapshot in refresh order.
func (c *Cache) All() []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}

// Get returns the cached artwork with the given id.
func (c *Cache) Get(id string) (models.Artwork, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return models.Artwork{}, false
	}
	return c.artworks[i], true
}

// Len returns the number of cached artworks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.artworks)
}
