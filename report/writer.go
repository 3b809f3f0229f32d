package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// WriterSink renders reports as text blocks onto an io.Writer, one block per
// report. A mutex keeps concurrent ships from interleaving blocks.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps a writer. Panics on nil, matching the fail-fast
// constructors elsewhere in this module.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		panic("report: writer cannot be nil")
	}
	return &WriterSink{w: w}
}

func (s *WriterSink) Ship(_ context.Context, r Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, r.String()); err != nil {
		return errors.Join(ErrShipFailed, err)
	}
	return nil
}
