package index

import (
	"sync"
	"time"

	"github.com/dorkpilot/dorkpilot/internal/domain"
)

// MemoryIndex holds the current catalog snapshot for lock-free reads by
// handlers. Reloads swap the whole snapshot; individual tables are
// never mutated in place.
type MemoryIndex struct {
	mu         sync.RWMutex
	catalog    *domain.Catalog
	lastReload time.Time
}

// NewMemoryIndex creates an empty index. Handlers see empty tables
// until the first catalog reload completes.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		catalog: &domain.Catalog{},
	}
}

// UpdateCatalog replaces the current snapshot.
func (idx *MemoryIndex) UpdateCatalog(c *domain.Catalog) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.catalog = c
	idx.lastReload = time.Now()
}

// Catalog returns the current snapshot. Callers must treat it as
// read-only.
func (idx *MemoryIndex) Catalog() *domain.Catalog {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.catalog
}

// Count returns the total number of catalog entries.
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.catalog.Size()
}

// GetLastReload returns the timestamp of the last catalog reload.
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
