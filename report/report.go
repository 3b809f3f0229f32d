package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/recordkit"
)

// Kind names the failure condition a report describes.
type Kind string

const (
	// KindFieldValidation covers per-record rule violations: missing fields,
	// empty required values, type mismatches, length caps, custom checks.
	KindFieldValidation Kind = "field_validation"
	// KindDuplicates covers structurally repeated records in a batch.
	KindDuplicates Kind = "duplicates_found"
)

// Report is one error-log entry: what went wrong, described issue by issue,
// and the record(s) it went wrong with.
type Report struct {
	ID        string             `json:"id"`
	Kind      Kind               `json:"kind"`
	Issues    []string           `json:"issues"`
	Records   []recordkit.Record `json:"records"`
	CreatedAt time.Time          `json:"created_at"`
}

// New builds a report with a fresh ID and a UTC timestamp. Issues keep the
// order they were found in.
func New(kind Kind, issues []string, records ...recordkit.Record) Report {
	return Report{
		ID:        uuid.New().String(),
		Kind:      kind,
		Issues:    issues,
		Records:   records,
		CreatedAt: time.Now().UTC(),
	}
}

// String renders the report as a human-readable block: the kind, then the
// issues joined on one line, then the offending records as JSON.
func (r Report) String() string {
	var b strings.Builder
	b.WriteString("--- error report ---\n")
	fmt.Fprintf(&b, "kind: %s\n", r.Kind)
	fmt.Fprintf(&b, "issues: %s\n", strings.Join(r.Issues, "; "))
	fmt.Fprintf(&b, "records: %s\n", r.recordsJSON())
	b.WriteString("--------------------")
	return b.String()
}

// LogValue shapes the report for slog sinks, keeping the kind, issues,
// records order.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", string(r.Kind)),
		slog.Any("issues", r.Issues),
		slog.String("records", r.recordsJSON()),
		slog.String("id", r.ID),
		slog.Time("created_at", r.CreatedAt),
	)
}

func (r Report) recordsJSON() string {
	data, err := json.Marshal(r.Records)
	if err != nil {
		return fmt.Sprintf("%v", r.Records)
	}
	return string(data)
}
