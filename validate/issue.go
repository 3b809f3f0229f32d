package validate

import (
	"fmt"
	"strings"
)

// IssueKind identifies which check a validation issue came from.
type IssueKind string

const (
	IssueMissingField  IssueKind = "missing_field"
	IssueMissingValue  IssueKind = "missing_value"
	IssueInvalidType   IssueKind = "invalid_type"
	IssueMaxLength     IssueKind = "max_length"
	IssueCustomFailed  IssueKind = "custom_failed"
	IssueCustomErrored IssueKind = "custom_errored"
)

// Issue describes a single validation failure on a single field.
type Issue struct {
	Field   string
	Kind    IssueKind
	Message string
}

// Issues is an ordered list of validation failures. Order follows the rule
// set's declaration order, with per-field checks in their fixed sequence.
type Issues []Issue

// Error joins the issue messages into one line, separated by "; ".
func (is Issues) Error() string {
	if len(is) == 0 {
		return "validation failed"
	}
	return strings.Join(is.Messages(), "; ")
}

// Messages returns the issue messages in order.
func (is Issues) Messages() []string {
	out := make([]string, len(is))
	for i, issue := range is {
		out[i] = issue.Message
	}
	return out
}

// Has reports whether any issue concerns the given field.
func (is Issues) Has(field string) bool {
	for _, issue := range is {
		if issue.Field == field {
			return true
		}
	}
	return false
}

// ByField returns the issues for one field, preserving order.
func (is Issues) ByField(field string) Issues {
	var out Issues
	for _, issue := range is {
		if issue.Field == field {
			out = append(out, issue)
		}
	}
	return out
}

// Fields returns the affected field names in first-appearance order.
func (is Issues) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(is))
	for _, issue := range is {
		if !seen[issue.Field] {
			fields = append(fields, issue.Field)
			seen[issue.Field] = true
		}
	}
	return fields
}

// IsEmpty reports whether the list holds no issues.
func (is Issues) IsEmpty() bool {
	return len(is) == 0
}

func missingField(field string) Issue {
	return Issue{
		Field:   field,
		Kind:    IssueMissingField,
		Message: fmt.Sprintf("missing required field: %s", field),
	}
}

func missingValue(field string) Issue {
	return Issue{
		Field:   field,
		Kind:    IssueMissingValue,
		Message: fmt.Sprintf("required value missing or invalid for field: %s", field),
	}
}

func invalidType(field string) Issue {
	return Issue{
		Field:   field,
		Kind:    IssueInvalidType,
		Message: fmt.Sprintf("invalid type for field: %s", field),
	}
}

func maxLength(field string, limit int) Issue {
	return Issue{
		Field:   field,
		Kind:    IssueMaxLength,
		Message: fmt.Sprintf("field '%s' exceeds max length of %d characters", field, limit),
	}
}

func customFailed(field string) Issue {
	return Issue{
		Field:   field,
		Kind:    IssueCustomFailed,
		Message: fmt.Sprintf("custom validation failed for field: %s", field),
	}
}

func customErrored(field, detail string) Issue {
	return Issue{
		Field:   field,
		Kind:    IssueCustomErrored,
		Message: fmt.Sprintf("error during custom validation for field: %s (%s)", field, detail),
	}
}
