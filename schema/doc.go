// Package schema defines what records are supposed to look like: per-field
// constraints bundled into ordered rule sets, rename tables for field
// mapping, and a loader for declarative schema files.
//
// # Rule Sets
//
// A RuleSet is an ordered collection of field rules. Order matters: the
// validate package walks rules in declaration order, so validation issues
// come out in a stable, predictable sequence. Rule sets are immutable once
// built.
//
// Every field starts from the same defaults: the field must be present
// (required field) and its value must be non-empty (required value). Options
// relax or extend that:
//
//	rules, err := schema.NewRuleSet(
//		schema.Field("email",
//			schema.OfType(recordkit.KindString),
//			schema.MaxLength(254),
//		),
//		schema.Field("age",
//			schema.OfType(recordkit.KindInt),
//			schema.AllowEmpty(),
//		),
//		schema.Field("nickname", schema.Optional()),
//	)
//
// Custom checks attach as predicates. A predicate returns (false, nil) for a
// clean rejection and a non-nil error when it could not evaluate; both are
// captured by the validation engine, never propagated:
//
//	schema.Field("email", schema.WithPredicate(func(v any) (bool, error) {
//		s, ok := v.(string)
//		return ok && strings.Contains(s, "@"), nil
//	}))
//
// # Field Maps
//
// A FieldMap renames fields during mapping. Only listed source fields
// survive: anything absent from the map is dropped by validate.Map. Duplicate
// targets are rejected at construction so two source fields can never
// silently collapse into one output field.
//
//	mapping, err := schema.NewFieldMap(map[string]string{
//		"email": "contact_email",
//		"age":   "age",
//	})
//
// # Schema Files
//
// Rule sets and field maps can be declared in YAML (or JSON, which parses
// through the same path):
//
//	fields:
//	  - name: email
//	    type: string
//	    max_length: 254
//	    predicate: corporate_email
//	  - name: age
//	    type: int
//	    required_value: false
//	mapping:
//	  email: contact_email
//
//	def, err := schema.LoadFile("users.yaml",
//		schema.WithPredicates(map[string]schema.Predicate{
//			"corporate_email": corporateEmail,
//		}),
//	)
//
// The required_field and required_value flags default to true when omitted,
// matching the programmatic constructor.
//
// # Error Handling
//
// Constructors return sentinel errors (ErrDuplicateField, ErrDuplicateTarget,
// ErrUnknownPredicate, ...) wrapped with context, so callers can branch with
// errors.Is. MustRuleSet and MustFieldMap panic on error for package-level
// declarations.
package schema
