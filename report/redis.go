package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes a report stream on a Redis server.
type RedisConfig struct {
	URL            string        `env:"REPORT_REDIS_URL,required"`
	Stream         string        `env:"REPORT_REDIS_STREAM" envDefault:"recordkit:reports"`
	MaxLen         int64         `env:"REPORT_REDIS_STREAM_MAXLEN" envDefault:"0"`
	RetryAttempts  int           `env:"REPORT_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REPORT_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REPORT_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// RedisSink appends reports to a Redis stream with XADD. Stream entries hold
// the report fields as flat values, with issues and records encoded as JSON
// so consumers on any runtime can pick them apart.
type RedisSink struct {
	client redis.UniversalClient
	stream string
	maxLen int64
	owned  bool
}

// RedisSinkOption tunes a RedisSink.
type RedisSinkOption func(*RedisSink)

// WithStreamMaxLen caps the stream length; Redis trims approximately.
func WithStreamMaxLen(n int64) RedisSinkOption {
	return func(s *RedisSink) {
		if n > 0 {
			s.maxLen = n
		}
	}
}

// NewRedisSink wraps a caller-owned client. The client's lifecycle stays
// with the caller; Close on the sink is a no-op. An empty stream name falls
// back to "recordkit:reports".
func NewRedisSink(client redis.UniversalClient, stream string, opts ...RedisSinkOption) *RedisSink {
	if client == nil {
		panic("report: redis client cannot be nil")
	}
	if stream == "" {
		stream = "recordkit:reports"
	}
	s := &RedisSink{client: client, stream: stream}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DialRedisSink connects to Redis, retrying per the configured attempts and
// interval, and returns a sink that owns the connection. Close releases it.
func DialRedisSink(ctx context.Context, cfg RedisConfig) (*RedisSink, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConnString, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			sink := NewRedisSink(client, cfg.Stream, WithStreamMaxLen(cfg.MaxLen))
			sink.owned = true
			return sink, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrRedisNotReady
}

func (s *RedisSink) Ship(ctx context.Context, r Report) error {
	issues, err := json.Marshal(r.Issues)
	if err != nil {
		return errors.Join(ErrShipFailed, err)
	}
	records, err := json.Marshal(r.Records)
	if err != nil {
		return errors.Join(ErrShipFailed, err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":         r.ID,
			"kind":       string(r.Kind),
			"issues":     string(issues),
			"records":    string(records),
			"created_at": r.CreatedAt.Format(time.RFC3339Nano),
		},
	}
	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return errors.Join(ErrShipFailed, err)
	}
	return nil
}

// Stream returns the destination stream name.
func (s *RedisSink) Stream() string {
	return s.stream
}

// Close releases the connection when the sink owns it, no-op otherwise.
func (s *RedisSink) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}
