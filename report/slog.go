package report

import (
	"context"
	"log/slog"
)

// SlogSink emits each report as one structured log record at Error level.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink wraps a logger; nil falls back to slog.Default().
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{log: l}
}

func (s *SlogSink) Ship(ctx context.Context, r Report) error {
	s.log.LogAttrs(ctx, slog.LevelError, "record processing report", slog.Any("report", r))
	return nil
}
