package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit"
	"github.com/dmitrymomot/recordkit/report"
)

type fakeExecer struct {
	queries []string
	args    [][]any
	err     error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	f.queries = append(f.queries, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPostgresSink(t *testing.T) {
	t.Parallel()

	t.Run("ensure schema creates the reports table", func(t *testing.T) {
		t.Parallel()

		db := &fakeExecer{}
		sink := report.NewPostgresSink(db)

		require.NoError(t, sink.EnsureSchema(context.Background()))
		require.Len(t, db.queries, 1)
		assert.Contains(t, db.queries[0], "CREATE TABLE IF NOT EXISTS")
		assert.Contains(t, db.queries[0], `"record_reports"`)
	})

	t.Run("ship inserts one row with five columns", func(t *testing.T) {
		t.Parallel()

		db := &fakeExecer{}
		sink := report.NewPostgresSink(db)

		r := report.New(report.KindFieldValidation,
			[]string{"invalid type for field: age"},
			recordkit.Record{"age": "x"},
		)
		require.NoError(t, sink.Ship(context.Background(), r))

		require.Len(t, db.queries, 1)
		assert.Contains(t, db.queries[0], `INSERT INTO "record_reports"`)
		require.Len(t, db.args[0], 5)
		assert.Equal(t, r.ID, db.args[0][0])
		assert.Equal(t, "field_validation", db.args[0][1])
		assert.JSONEq(t, `["invalid type for field: age"]`, db.args[0][2].(string))
		assert.JSONEq(t, `[{"age":"x"}]`, db.args[0][3].(string))
	})

	t.Run("custom table name is quoted", func(t *testing.T) {
		t.Parallel()

		db := &fakeExecer{}
		sink := report.NewPostgresSink(db, report.WithPostgresTable("audit.reports"))
		assert.Equal(t, "audit.reports", sink.Table())

		require.NoError(t, sink.EnsureSchema(context.Background()))
		assert.Contains(t, db.queries[0], `"audit.reports"`)
	})

	t.Run("exec failures wrap the sentinel", func(t *testing.T) {
		t.Parallel()

		sink := report.NewPostgresSink(&fakeExecer{err: errors.New("connection refused")})
		err := sink.Ship(context.Background(), report.New(report.KindDuplicates, nil))
		assert.ErrorIs(t, err, report.ErrShipFailed)
	})

	t.Run("nil executor panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { report.NewPostgresSink(nil) })
	})
}

func TestDialPostgresSinkBadConnString(t *testing.T) {
	t.Parallel()

	_, err := report.DialPostgresSink(context.Background(), report.PostgresConfig{
		ConnectionString: "postgres://bad host:xx/",
		RetryAttempts:    1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrInvalidConnString)
}

func TestMongoSinkConstruction(t *testing.T) {
	t.Parallel()

	t.Run("nil collection panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { report.NewMongoSink(nil) })
	})
}
