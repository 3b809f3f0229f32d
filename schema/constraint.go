package schema

import "github.com/dmitrymomot/recordkit"

// Predicate is a custom validation check for a single field value. Returning
// (false, nil) rejects the value; returning an error marks the check as
// failed to evaluate. The validation engine recovers panics and treats them
// like returned errors, so a misbehaving predicate can never take down a
// batch.
type Predicate func(value any) (bool, error)

// Constraint bundles the checks applied to one field. The zero value is not
// useful on its own; build constraints through Field and its options, which
// apply the required-by-default semantics.
type Constraint struct {
	// RequiredField requires the key to be present in the record.
	RequiredField bool
	// RequiredValue requires a present value to be non-empty. Numeric zero
	// counts as non-empty; nil, "", false, and empty collections do not.
	RequiredValue bool
	// Type constrains the value's kind. KindInvalid means unconstrained.
	Type recordkit.Kind
	// MaxLength caps the rune count of string values. Zero means no cap.
	// Non-string values are never length-checked.
	MaxLength int
	// Custom is an optional predicate, run for every non-null value.
	Custom Predicate

	// maxLengthSet distinguishes an explicit MaxLength(0) from the unset
	// default, so NewRuleSet can reject the former.
	maxLengthSet bool
}

// FieldRule pairs a field name with its constraint.
type FieldRule struct {
	Name       string
	Constraint Constraint
}

// FieldOption adjusts a field's constraint during construction.
type FieldOption func(*Constraint)

// Field builds a rule for one field. Without options the field is required
// and its value must be non-empty.
func Field(name string, opts ...FieldOption) FieldRule {
	rule := FieldRule{
		Name: name,
		Constraint: Constraint{
			RequiredField: true,
			RequiredValue: true,
		},
	}
	for _, opt := range opts {
		opt(&rule.Constraint)
	}
	return rule
}

// Optional marks the field as allowed to be absent. A present non-null value
// is still checked against the remaining constraints; an explicit null passes
// the field entirely.
func Optional() FieldOption {
	return func(c *Constraint) {
		c.RequiredField = false
	}
}

// AllowEmpty permits empty values such as "" or nil for a present field.
func AllowEmpty() FieldOption {
	return func(c *Constraint) {
		c.RequiredValue = false
	}
}

// OfType constrains the value to the given kind.
func OfType(k recordkit.Kind) FieldOption {
	return func(c *Constraint) {
		c.Type = k
	}
}

// MaxLength caps string values at n runes. The cap must be positive;
// NewRuleSet rejects anything else.
func MaxLength(n int) FieldOption {
	return func(c *Constraint) {
		c.MaxLength = n
		c.maxLengthSet = true
	}
}

// WithPredicate attaches a custom check to the field.
func WithPredicate(p Predicate) FieldOption {
	return func(c *Constraint) {
		c.Custom = p
	}
}
