// Package loader reads a project's GL data and statement hierarchy from
// disk, caching parsed results with a TTL so repeated renders against the
// same project don't re-read and re-parse the files. The statement engine
// itself never sees this cache; callers that need fresh data call Bust.
package loader

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/statline-dev/statline/internal/gl"
	"github.com/statline-dev/statline/internal/hierarchy"
)

// Dataset bundles everything needed to build a statement for one project.
type Dataset struct {
	GL    *gl.Service
	Chart *hierarchy.Chart
}

type cacheEntry struct {
	dataset *Dataset
	expires time.Time
}

// Loader loads project datasets keyed by data directory.
type Loader struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// New creates a Loader. A zero or negative ttl disables caching.
func New(ttl time.Duration) *Loader {
	return &Loader{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the dataset for a data directory containing accounts.csv,
// gl-history.csv, and statement.yaml. A cached dataset is returned as-is
// until its TTL expires.
func (l *Loader) Load(dir string) (*Dataset, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}

	if l.ttl > 0 {
		l.mu.RLock()
		entry, ok := l.entries[abs]
		l.mu.RUnlock()
		if ok && l.now().Before(entry.expires) {
			return entry.dataset, nil
		}
	}

	glSvc, err := gl.Load(abs)
	if err != nil {
		return nil, err
	}
	chart, err := hierarchy.Load(filepath.Join(abs, "statement.yaml"))
	if err != nil {
		return nil, err
	}
	ds := &Dataset{GL: glSvc, Chart: chart}

	if l.ttl > 0 {
		l.mu.Lock()
		l.entries[abs] = cacheEntry{dataset: ds, expires: l.now().Add(l.ttl)}
		l.mu.Unlock()
	}
	return ds, nil
}

// Bust drops all cached datasets.
func (l *Loader) Bust() {
	l.mu.Lock()
	l.entries = make(map[string]cacheEntry)
	l.mu.Unlock()
}
