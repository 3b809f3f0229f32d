package schema

import (
	"fmt"
	"slices"
)

// RuleSet is an ordered, immutable collection of field rules. Declaration
// order is significant: validation walks rules in this order and reports
// issues in the same sequence.
type RuleSet struct {
	rules []FieldRule
	index map[string]int
}

// NewRuleSet builds a rule set from field rules. Field names must be unique
// and non-empty, and max-length caps must be positive. An empty rule set is
// valid; every record passes it.
func NewRuleSet(rules ...FieldRule) (*RuleSet, error) {
	rs := &RuleSet{
		rules: slices.Clone(rules),
		index: make(map[string]int, len(rules)),
	}
	for i, rule := range rs.rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("%w: rule %d", ErrEmptyFieldName, i)
		}
		if _, exists := rs.index[rule.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, rule.Name)
		}
		if c := rule.Constraint; c.MaxLength < 0 || (c.maxLengthSet && c.MaxLength == 0) {
			return nil, fmt.Errorf("%w: field %q", ErrInvalidMaxLength, rule.Name)
		}
		rs.index[rule.Name] = i
	}
	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on error. Intended for
// package-level schema declarations.
func MustRuleSet(rules ...FieldRule) *RuleSet {
	rs, err := NewRuleSet(rules...)
	if err != nil {
		panic(fmt.Sprintf("schema: invalid rule set: %v", err))
	}
	return rs
}

// Fields returns the rules in declaration order. The returned slice is a
// copy; mutating it does not affect the rule set.
func (rs *RuleSet) Fields() []FieldRule {
	return slices.Clone(rs.rules)
}

// Rule looks up the constraint for a field name.
func (rs *RuleSet) Rule(name string) (Constraint, bool) {
	i, ok := rs.index[name]
	if !ok {
		return Constraint{}, false
	}
	return rs.rules[i].Constraint, true
}

// Len returns the number of field rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}
