// Package collector accumulates resolved candidate domains.
package collector

import (
	"lookalike/pkg/domain"
	"sync"
)

// Collector is an append-only list of result entries. Append may be called
// from many goroutines; Entries is meant for readers once writers are done.
type Collector struct {
	mu      sync.Mutex
	entries []domain.ResultEntry
}

// New creates an empty Collector.
func New() *Collector {
	return &Collector{}
}

// Append adds one entry.
func (c *Collector) Append(entry domain.ResultEntry) {
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
}

// Entries returns a copy of the entries in insertion order.
func (c *Collector) Entries() []domain.ResultEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.ResultEntry, len(c.entries))
	copy(out, c.entries)

	return out
}

// Len returns the number of entries.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
