package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

func TestBatchID(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		ctx := logger.WithBatchID(context.Background(), "batch-7")
		assert.Equal(t, "batch-7", logger.BatchID(ctx))
	})

	t.Run("absent id is empty", func(t *testing.T) {
		assert.Empty(t, logger.BatchID(context.Background()))
	})

	t.Run("todo context is empty", func(t *testing.T) {
		assert.Empty(t, logger.BatchID(context.TODO()))
	})
}

func TestBatchIDExtractor(t *testing.T) {
	t.Run("emits attr when id present", func(t *testing.T) {
		ctx := logger.WithBatchID(context.Background(), "batch-7")

		attr, ok := logger.BatchIDExtractor(ctx)
		require.True(t, ok)
		assert.Equal(t, "batch_id", attr.Key)
		assert.Equal(t, "batch-7", attr.Value.String())
	})

	t.Run("silent when id absent", func(t *testing.T) {
		_, ok := logger.BatchIDExtractor(context.Background())
		assert.False(t, ok)
	})

	t.Run("stamps every log line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.BatchIDExtractor),
		)

		ctx := logger.WithBatchID(context.Background(), "batch-7")
		log.InfoContext(ctx, "processed")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "batch-7", entry["batch_id"])
	})
}
