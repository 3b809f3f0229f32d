package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig describes a reports table in a PostgreSQL database.
type PostgresConfig struct {
	ConnectionString string        `env:"REPORT_POSTGRES_URL,required"`
	Table            string        `env:"REPORT_POSTGRES_TABLE" envDefault:"record_reports"`
	RetryAttempts    int           `env:"REPORT_POSTGRES_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"REPORT_POSTGRES_RETRY_INTERVAL" envDefault:"5s"`
}

// Execer is the slice of pgx needed to write reports. *pgxpool.Pool,
// *pgx.Conn, and pgx.Tx all satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSink inserts one row per report, with issues and records stored as
// jsonb.
type PostgresSink struct {
	db    Execer
	table string
	pool  *pgxpool.Pool
}

// PostgresSinkOption tunes a PostgresSink.
type PostgresSinkOption func(*PostgresSink)

// WithPostgresTable overrides the default "record_reports" table name.
func WithPostgresTable(name string) PostgresSinkOption {
	return func(s *PostgresSink) {
		if name != "" {
			s.table = name
		}
	}
}

// NewPostgresSink wraps a caller-owned executor.
func NewPostgresSink(db Execer, opts ...PostgresSinkOption) *PostgresSink {
	if db == nil {
		panic("report: postgres executor cannot be nil")
	}
	s := &PostgresSink{db: db, table: "record_reports"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DialPostgresSink opens a connection pool with linear backoff between
// attempts and returns a sink that owns the pool. Close releases it.
func DialPostgresSink(ctx context.Context, cfg PostgresConfig) (*PostgresSink, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnString, err)
	}

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err := pool.Ping(ctx); err == nil {
				sink := NewPostgresSink(pool, WithPostgresTable(cfg.Table))
				sink.pool = pool
				return sink, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrPostgresNotReady, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}
	return nil, ErrPostgresNotReady
}

// EnsureSchema creates the reports table when it does not exist yet. It is
// idempotent and safe to run at startup.
func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id uuid PRIMARY KEY,
		kind text NOT NULL,
		issues jsonb NOT NULL,
		records jsonb NOT NULL,
		created_at timestamptz NOT NULL
	)`, s.tableIdent())
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure reports table: %w", err)
	}
	return nil
}

func (s *PostgresSink) Ship(ctx context.Context, r Report) error {
	issues, err := json.Marshal(r.Issues)
	if err != nil {
		return errors.Join(ErrShipFailed, err)
	}
	records, err := json.Marshal(r.Records)
	if err != nil {
		return errors.Join(ErrShipFailed, err)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (id, kind, issues, records, created_at) VALUES ($1, $2, $3, $4, $5)",
		s.tableIdent(),
	)
	if _, err := s.db.Exec(ctx, query, r.ID, string(r.Kind), string(issues), string(records), r.CreatedAt); err != nil {
		return errors.Join(ErrShipFailed, err)
	}
	return nil
}

// Table returns the destination table name.
func (s *PostgresSink) Table() string {
	return s.table
}

// Close releases the pool when the sink owns it, no-op otherwise.
func (s *PostgresSink) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// tableIdent quotes the table name so it can be interpolated into SQL.
func (s *PostgresSink) tableIdent() string {
	return pgx.Identifier{s.table}.Sanitize()
}
