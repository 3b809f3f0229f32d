package processor

import "fmt"

// DuplicatePolicy controls what a Processor does about structurally repeated
// records in a batch.
type DuplicatePolicy uint8

const (
	// DuplicatesIgnore skips duplicate detection entirely. Repeated records
	// are validated and mapped like any other record.
	DuplicatesIgnore DuplicatePolicy = iota

	// DuplicatesFilter reports duplicates, drops them, and processes the
	// remaining unique records. First occurrence of a value survives.
	DuplicatesFilter

	// DuplicatesAbort reports duplicates and fails the whole batch. No
	// records are processed, not even the unique ones.
	DuplicatesAbort
)

var policyNames = map[DuplicatePolicy]string{
	DuplicatesIgnore: "ignore",
	DuplicatesFilter: "filter",
	DuplicatesAbort:  "abort",
}

func (p DuplicatePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("duplicatepolicy(%d)", uint8(p))
}

// ParseDuplicatePolicy maps the textual policy names used in configuration
// onto DuplicatePolicy values. Recognized names are "ignore", "filter", and
// "abort".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return DuplicatesIgnore, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}
