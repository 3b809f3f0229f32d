package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/schema"
)

// Record validates a record against a rule set. It returns nil when the
// record passes every rule, or a *RecordError listing every issue found.
// Rules are evaluated in declaration order and checking never stops early,
// so one call surfaces the complete picture.
func Record(rec recordkit.Record, rules *schema.RuleSet) error {
	var issues Issues
	for _, rule := range rules.Fields() {
		issues = append(issues, checkField(rec, rule)...)
	}
	if issues.IsEmpty() {
		return nil
	}
	return &RecordError{Record: rec, Issues: issues}
}

func checkField(rec recordkit.Record, rule schema.FieldRule) Issues {
	value, present := rec[rule.Name]
	c := rule.Constraint

	if !present {
		if c.RequiredField {
			return Issues{missingField(rule.Name)}
		}
		return nil
	}

	// A null value is treated like an absent one: it can trip the
	// required-value rule but never reaches the later checks.
	if value == nil {
		if c.RequiredField && c.RequiredValue {
			return Issues{missingValue(rule.Name)}
		}
		return nil
	}

	var issues Issues
	if c.RequiredValue && recordkit.IsEmptyValue(value) {
		issues = append(issues, missingValue(rule.Name))
	}
	if c.Type != recordkit.KindInvalid && !c.Type.Matches(value) {
		issues = append(issues, invalidType(rule.Name))
	}
	if c.MaxLength > 0 {
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) > c.MaxLength {
			issues = append(issues, maxLength(rule.Name, c.MaxLength))
		}
	}
	if c.Custom != nil {
		if issue, failed := runPredicate(rule.Name, c.Custom, value); failed {
			issues = append(issues, issue)
		}
	}
	return issues
}

// runPredicate shields the engine from user code: returned errors and panics
// both collapse into a field issue.
func runPredicate(field string, p schema.Predicate, value any) (issue Issue, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			issue = customErrored(field, fmt.Sprintf("panic: %v", r))
			failed = true
		}
	}()

	ok, err := p(value)
	if err != nil {
		return customErrored(field, err.Error()), true
	}
	if !ok {
		return customFailed(field), true
	}
	return Issue{}, false
}
