// Package recordkit provides the shared data model for validating, mapping,
// and batch-processing loosely structured records.
//
// A Record is a plain map[string]any, typically produced by decoding JSON.
// Everything else in this module builds on a few small primitives defined
// here:
//
//   - Kind: a closed set of value-kind tags used by type constraints
//   - Number: a normalized numeric form for cross-representation comparison
//   - Equal and Clone: structural equality and deep copying over records
//   - IsEmptyValue: the emptiness test behind required-value checks
//
// Subpackages:
//
//   - schema: field constraints, rule sets, rename tables, and schema files
//   - validate: record validation and field mapping
//   - dedupe: structural duplicate detection
//   - processor: batch processing with configurable duplicate policies
//   - report: error reports and pluggable report sinks
//   - source: decoding JSON input into record batches
//
// Basic Usage:
//
//	rules := schema.MustRuleSet(
//		schema.Field("email", schema.OfType(recordkit.KindString), schema.MaxLength(254)),
//		schema.Field("age", schema.OfType(recordkit.KindInt), schema.AllowEmpty()),
//	)
//	mapping := schema.MustFieldMap(map[string]string{"email": "contact_email", "age": "age"})
//
//	proc, err := processor.New(rules, mapping,
//		processor.WithDuplicatePolicy(processor.DuplicatesFilter),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := proc.Process(ctx, records)
//	// result.Records holds the validated, renamed records;
//	// result.Reports describes everything that was rejected.
//
// Numeric values deserve a note: encoding/json decodes every number into
// float64, which erases the int/float distinction that type constraints rely
// on. Use the source package (or json.Decoder.UseNumber) to decode input so
// numbers arrive as json.Number and classify correctly.
package recordkit
