// Package processor orchestrates batch record processing: optional duplicate
// detection, per-record validation against a rule set, and field renaming
// through a field map, with per-record failure isolation and an accumulated
// report log.
//
// A Processor is configuration, not state: construct it once with a rule set
// and a field map, then feed it batches. Invalid records never abort a batch;
// each one becomes a report and the loop moves on. The only batch-level
// failures are duplicate findings under the abort policy and context
// cancellation.
//
// # Usage
//
//	rules := schema.MustRuleSet(
//	    schema.Field("email", schema.OfType(recordkit.KindString)),
//	    schema.Field("age", schema.Optional(), schema.OfType(recordkit.KindInt)),
//	)
//	fields := schema.MustFieldMap(map[string]string{
//	    "email": "contact_email",
//	    "age":   "age",
//	})
//
//	proc, err := processor.New(rules, fields,
//	    processor.WithDuplicatePolicy(processor.DuplicatesFilter),
//	    processor.WithWorkers(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := proc.Process(ctx, records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Records), "records passed,", len(res.Reports), "reports")
//
// # Duplicate Policies
//
// DuplicatesIgnore (the zero value) performs no detection. DuplicatesFilter
// reports structurally repeated records, drops them, and processes the rest.
// DuplicatesAbort reports them and fails the whole batch; no records are
// returned.
//
// # Reports
//
// Every report a Process call generates is returned in its Result, appended
// to the processor's own collector (readable via Reports, cleared via
// ResetReports), and shipped to each sink registered with WithSinks. Sink
// failures are logged and never affect the batch outcome.
//
// # Concurrency
//
// WithWorkers(n) fans the validate+map stage out over n goroutines while
// preserving input order in both output records and reports. Duplicate
// detection stays sequential because first occurrence wins. A Processor is
// safe for concurrent use.
package processor
