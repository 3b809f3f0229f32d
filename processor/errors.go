package processor

import "errors"

var (
	// ErrNilRuleSet is returned by New when no rule set is supplied.
	ErrNilRuleSet = errors.New("rule set is nil")

	// ErrInvalidPolicy is returned for a duplicate policy outside the known
	// set, whether numeric or textual.
	ErrInvalidPolicy = errors.New("invalid duplicate policy")

	// ErrInvalidWorkers is returned when the worker count is below one.
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrInvalidInput marks input that is not a sequence of records. It is a
	// caller bug rather than a data-quality finding, so no report is emitted
	// for it.
	ErrInvalidInput = errors.New("invalid input: not a record sequence")
)
