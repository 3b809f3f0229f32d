package validate

import (
	"errors"

	"github.com/dmitrymomot/recordkit"
)

// RecordError is the failure outcome of validating one record. It pairs the
// offending record with the ordered issues found in it.
type RecordError struct {
	Record recordkit.Record
	Issues Issues
}

func (e *RecordError) Error() string {
	return "record validation failed: " + e.Issues.Error()
}

// Unwrap exposes the issue list to errors.As.
func (e *RecordError) Unwrap() error {
	return e.Issues
}

// ExtractIssues pulls the issue list out of a validation error. It returns
// nil for nil errors and for errors unrelated to validation.
func ExtractIssues(err error) Issues {
	if err == nil {
		return nil
	}
	var re *RecordError
	if errors.As(err, &re) {
		return re.Issues
	}
	var issues Issues
	if errors.As(err, &issues) {
		return issues
	}
	return nil
}

// IsRecordError reports whether err is a validation outcome.
func IsRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
