package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/dedupe"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/report"
	"github.com/dmitrymomot/recordkit/schema"
	"github.com/dmitrymomot/recordkit/source"
	"github.com/dmitrymomot/recordkit/validate"
)

// Processor runs batches of records through duplicate detection, validation,
// and field renaming against a fixed rule set and field map. Construct once,
// reuse across batches; it is safe for concurrent use.
type Processor struct {
	rules   *schema.RuleSet
	fields  schema.FieldMap
	policy  DuplicatePolicy
	workers int
	log     *slog.Logger
	sinks   []report.Sink
	reports *report.Collector
}

// Result is the outcome of one Process call: the validated, renamed records
// in input order, and the reports that call generated. A duplicates report,
// when present, precedes the field-validation reports.
type Result struct {
	Records []recordkit.Record
	Reports []report.Report
}

// New creates a processor bound to a rule set and a field map. The field map
// applies to every valid record; fields it does not name are dropped from
// the output.
func New(rules *schema.RuleSet, fields schema.FieldMap, opts ...Option) (*Processor, error) {
	if rules == nil {
		return nil, ErrNilRuleSet
	}

	p := &Processor{
		rules:   rules,
		fields:  fields,
		workers: 1,
		log:     slog.Default(),
		reports: report.NewCollector(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// MustNew is like New but panics when construction fails, for processors
// wired at startup.
func MustNew(rules *schema.RuleSet, fields schema.FieldMap, opts ...Option) *Processor {
	p, err := New(rules, fields, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create processor: %v", err))
	}
	return p
}

// Process runs one batch. Duplicate detection happens first, per the
// configured policy. Each surviving record is then validated and renamed:
// valid records land in Result.Records, invalid ones become reports and are
// skipped without affecting their siblings. Every generated report is
// returned in the Result, kept in the processor's collector, and shipped to
// the configured sinks.
//
// The returned error is nil except when the abort policy finds duplicates
// (a *dedupe.DuplicatesError matching dedupe.ErrDuplicates) or the context
// is cancelled.
func (p *Processor) Process(ctx context.Context, records []recordkit.Record) (Result, error) {
	ctx = logger.WithBatchID(ctx, uuid.NewString())

	var res Result
	if err := ctx.Err(); err != nil {
		return res, err
	}

	batch := records
	if p.policy != DuplicatesIgnore {
		unique, dups := dedupe.Partition(records)
		if len(dups) > 0 {
			dupErr := &dedupe.DuplicatesError{Duplicates: dups}
			p.ship(ctx, report.New(report.KindDuplicates, []string{dupErr.Error()}, dups...), &res)

			if p.policy == DuplicatesAbort {
				p.log.ErrorContext(ctx, "batch aborted on duplicate records",
					slog.Int("duplicates", len(dups)))
				return res, dupErr
			}
		}
		batch = unique
	}

	out, reps, err := p.run(ctx, batch)
	if err != nil {
		return res, err
	}

	res.Records = out
	for _, rep := range reps {
		p.ship(ctx, rep, &res)
	}

	p.log.InfoContext(ctx, "batch processed",
		slog.Int("records_in", len(records)),
		slog.Int("records_out", len(res.Records)),
		slog.Int("reports", len(res.Reports)),
		slog.String("policy", p.policy.String()))

	return res, nil
}

// ProcessAny is Process for input of unknown shape, such as freshly decoded
// JSON. Input that is not a sequence of records is rejected with
// ErrInvalidInput before any processing happens; no report is generated for
// it.
func (p *Processor) ProcessAny(ctx context.Context, input any) (Result, error) {
	records, err := source.Records(input)
	if err != nil {
		return Result{}, errors.Join(ErrInvalidInput, err)
	}
	return p.Process(ctx, records)
}

// Reports returns every report accumulated across Process calls on this
// instance, oldest first.
func (p *Processor) Reports() []report.Report {
	return p.reports.Reports()
}

// ResetReports clears the accumulated report log.
func (p *Processor) ResetReports() {
	p.reports.Reset()
}

func (p *Processor) run(ctx context.Context, batch []recordkit.Record) ([]recordkit.Record, []report.Report, error) {
	if p.workers > 1 && len(batch) > 1 {
		return p.runParallel(ctx, batch)
	}
	return p.runSequential(ctx, batch)
}

func (p *Processor) runSequential(ctx context.Context, batch []recordkit.Record) ([]recordkit.Record, []report.Report, error) {
	out := make([]recordkit.Record, 0, len(batch))
	var reps []report.Report

	for _, rec := range batch {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		mapped, rep, ok := p.processOne(rec)
		if !ok {
			reps = append(reps, rep)
			continue
		}
		out = append(out, mapped)
	}

	return out, reps, nil
}

// runParallel fans processOne out over the worker pool and reassembles
// results by input position, so output order matches the sequential path.
func (p *Processor) runParallel(ctx context.Context, batch []recordkit.Record) ([]recordkit.Record, []report.Report, error) {
	type slot struct {
		mapped recordkit.Record
		rep    report.Report
		ok     bool
	}
	slots := make([]slot, len(batch))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, rec := range batch {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mapped, rep, ok := p.processOne(rec)
			slots[i] = slot{mapped: mapped, rep: rep, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	out := make([]recordkit.Record, 0, len(batch))
	var reps []report.Report
	for _, s := range slots {
		if !s.ok {
			reps = append(reps, s.rep)
			continue
		}
		out = append(out, s.mapped)
	}

	return out, reps, nil
}

// processOne validates and renames a single record. Validation failures,
// including predicate errors and panics, come back as a field-validation
// report carrying the offending record.
func (p *Processor) processOne(rec recordkit.Record) (recordkit.Record, report.Report, bool) {
	if err := validate.Record(rec, p.rules); err != nil {
		issues := validate.ExtractIssues(err)
		return nil, report.New(report.KindFieldValidation, issues.Messages(), rec), false
	}
	return validate.Map(rec, p.fields), report.Report{}, true
}

// ship records a report in the collector, appends it to the in-flight
// result, and forwards it to every configured sink. Sink failures are logged
// and never affect the batch outcome.
func (p *Processor) ship(ctx context.Context, rep report.Report, res *Result) {
	_ = p.reports.Ship(ctx, rep)
	res.Reports = append(res.Reports, rep)

	for _, s := range p.sinks {
		if err := s.Ship(ctx, rep); err != nil {
			p.log.ErrorContext(ctx, "failed to ship report",
				slog.String("report_id", rep.ID),
				slog.String("kind", string(rep.Kind)),
				logger.Error(err))
		}
	}
}
