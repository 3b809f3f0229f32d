package source

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource marks any decode or shape failure in this package;
	// match it with errors.Is.
	ErrInvalidSource = errors.New("invalid source")

	// ErrNotArray is returned when the input is not a sequence of records.
	ErrNotArray = fmt.Errorf("%w: input is not an array of records", ErrInvalidSource)

	// ErrNotObject is returned when a sequence element is not an object.
	ErrNotObject = fmt.Errorf("%w: sequence element is not an object", ErrInvalidSource)
)
