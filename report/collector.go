package report

import (
	"context"
	"slices"
	"sync"
)

// Collector is an in-memory sink. Reports accumulate until Reset, which
// mirrors the lifecycle of a processor's error log: it grows across batches
// until the owner clears it.
type Collector struct {
	mu      sync.Mutex
	reports []Report
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Ship appends the report. It never fails.
func (c *Collector) Ship(_ context.Context, r Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = append(c.reports, r)
	return nil
}

// Reports returns the accumulated reports in arrival order. The returned
// slice is a copy.
func (c *Collector) Reports() []Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.reports)
}

// Reset discards everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = nil
}

// Len returns the number of accumulated reports.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}
