package processor

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/recordkit/report"
)

// Option configures a Processor during construction.
type Option func(*Processor) error

// WithDuplicatePolicy selects how the processor treats structurally repeated
// records. The zero value DuplicatesIgnore performs no detection.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(proc *Processor) error {
		switch p {
		case DuplicatesIgnore, DuplicatesFilter, DuplicatesAbort:
			proc.policy = p
			return nil
		default:
			return fmt.Errorf("%w: %d", ErrInvalidPolicy, uint8(p))
		}
	}
}

// WithWorkers fans the validate+map stage out over n goroutines. Output
// order still follows input order regardless of n; n must be at least 1.
func WithWorkers(n int) Option {
	return func(proc *Processor) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
		}
		proc.workers = n
		return nil
	}
}

// WithLogger sets the logger used for batch summaries and sink failures.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(proc *Processor) error {
		if log != nil {
			proc.log = log
		}
		return nil
	}
}

// WithSinks registers destinations every generated report is shipped to, in
// addition to the processor's built-in collector. Nil sinks are ignored.
func WithSinks(sinks ...report.Sink) Option {
	return func(proc *Processor) error {
		for _, s := range sinks {
			if s != nil {
				proc.sinks = append(proc.sinks, s)
			}
		}
		return nil
	}
}
