package dedupe

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/recordkit"
)

// ErrDuplicates marks any duplicate-detection failure; match it with
// errors.Is.
var ErrDuplicates = errors.New("duplicate data found")

// DuplicatesError carries the duplicate records found in a batch, in input
// order.
type DuplicatesError struct {
	Duplicates []recordkit.Record
}

func (e *DuplicatesError) Error() string {
	return fmt.Sprintf("duplicate data found: %d record(s)", len(e.Duplicates))
}

// Unwrap ties the error to the ErrDuplicates sentinel.
func (e *DuplicatesError) Unwrap() error {
	return ErrDuplicates
}
