package logger

import (
	"context"
	"log/slog"
)

type batchIDKey struct{}

// WithBatchID stamps a batch identifier into the context. The processor does
// this once per Process call so everything logged during that batch can be
// correlated.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchIDKey{}, id)
}

// BatchID returns the batch identifier stamped into the context, or the
// empty string when there is none.
func BatchID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(batchIDKey{}).(string)
	return id
}

// BatchIDExtractor injects the context's batch identifier into log records
// under the key "batch_id". Register it with WithContextExtractors.
func BatchIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := BatchID(ctx); id != "" {
		return slog.String("batch_id", id), true
	}
	return slog.Attr{}, false
}
