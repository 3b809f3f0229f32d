package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("non-nil error keyed as error", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, "boom", attr.Value.String())
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("all nil yields empty attr", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	})

	t.Run("keeps non-nil errors with positional keys", func(t *testing.T) {
		t.Parallel()

		attr := logger.Errors(nil, errors.New("second"), errors.New("third"))
		assert.Equal(t, "errors", attr.Key)

		group := attr.Value.Group()
		assert.Len(t, group, 2)
		assert.Equal(t, "1", group[0].Key)
		assert.Equal(t, "2", group[1].Key)
	})
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"component", logger.Component("importer"), "component", "importer"},
		{"field", logger.Field("email"), "field", "email"},
		{"batch size", logger.BatchSize(10), "batch_size", "10"},
		{"record count", logger.RecordCount(7), "record_count", "7"},
		{"report count", logger.ReportCount(3), "report_count", "3"},
		{"duration", logger.Duration(2 * time.Second), "duration", "2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("batch",
		logger.RecordCount(5),
		logger.ReportCount(1),
	)
	assert.Equal(t, "batch", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}
