// Package validate checks records against rule sets and applies field
// mappings. It is the per-record core that the processor package drives in
// batches.
//
// # Validation
//
// Record walks the rule set in declaration order and collects every issue it
// finds; it never stops at the first problem. A valid record yields a nil
// error, an invalid one yields a *RecordError carrying the record and the
// ordered issue list:
//
//	if err := validate.Record(rec, rules); err != nil {
//		issues := validate.ExtractIssues(err)
//		for _, issue := range issues {
//			fmt.Println(issue.Field, issue.Kind, issue.Message)
//		}
//	}
//
// Checks run per field in a fixed order: presence, required value, type,
// max length, custom predicate. A null value counts as missing rather than
// present: on an optional field it passes outright, and on a required field
// it can only trip the required-value rule. A present non-null value can
// accumulate several issues at once; an absent required field produces
// exactly one. Issue messages are stable, so downstream systems can match
// on them:
//
//	missing required field: email
//	required value missing or invalid for field: email
//	invalid type for field: age
//	field 'bio' exceeds max length of 500 characters
//	custom validation failed for field: email
//	error during custom validation for field: email (lookup timed out)
//
// Custom predicates are fully isolated: a predicate that returns an error or
// panics turns into an issue on its field, never into a propagated failure.
//
// # Mapping
//
// Map renames fields through a schema.FieldMap and drops everything the map
// does not mention. It always builds a fresh record and never mutates its
// input:
//
//	out := validate.Map(recordkit.Record{"email": "a@b.co", "junk": 1}, mapping)
//	// out == recordkit.Record{"contact_email": "a@b.co"}
//
// # Error Handling
//
// *RecordError unwraps to its Issues, so both errors.As targets work.
// ExtractIssues is the convenience path; it returns nil for nil errors and
// for errors that are not validation outcomes.
//
// # Performance Considerations
//
// Validation is allocation-light: a clean record allocates nothing beyond
// the rule-set walk. Predicates run synchronously on the calling goroutine;
// keep them cheap and push anything slow behind the processor's worker pool.
package validate
