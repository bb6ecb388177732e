package handler

import (
	"sync"

	"github.com/lamnhan066/lite-logger/core"
)

// Capture is a recording sink. It stores a copy of every record it
// receives and is primarily useful in tests and in hosts that want to
// inspect emitted records without writing them anywhere.
type Capture struct {
	mu      sync.Mutex
	records []core.Record
}

// NewCapture creates an empty capture handler
func NewCapture() *Capture {
	return &Capture{}
}

// Handle stores a copy of the record
func (c *Capture) Handle(rec *core.Record) error {
	c.mu.Lock()
	c.records = append(c.records, *rec)
	c.mu.Unlock()
	return nil
}

// Records returns a snapshot of everything captured so far, in order
func (c *Capture) Records() []core.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of captured records
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Reset discards all captured records
func (c *Capture) Reset() {
	c.mu.Lock()
	c.records = c.records[:0]
	c.mu.Unlock()
}

// Close closes the handler
func (c *Capture) Close() error {
	return nil
}
