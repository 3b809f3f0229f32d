package report

import (
	"context"
	"errors"
)

// Sink is a report destination. Implementations must be safe for concurrent
// Ship calls; the processor may deliver from several goroutines.
type Sink interface {
	Ship(ctx context.Context, r Report) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, r Report) error

func (f SinkFunc) Ship(ctx context.Context, r Report) error {
	return f(ctx, r)
}

type multiSink struct {
	sinks []Sink
}

// MultiSink fans every report out to all given sinks. One failing sink never
// blocks the others; all failures come back joined into a single error.
func MultiSink(sinks ...Sink) Sink {
	return &multiSink{sinks: sinks}
}

func (m *multiSink) Ship(ctx context.Context, r Report) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Ship(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
