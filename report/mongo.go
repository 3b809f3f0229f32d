package report

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/recordkit"
)

// MongoConfig describes a reports collection in a MongoDB database.
type MongoConfig struct {
	URL            string        `env:"REPORT_MONGO_URL,required"`
	Database       string        `env:"REPORT_MONGO_DB" envDefault:"recordkit"`
	Collection     string        `env:"REPORT_MONGO_COLLECTION" envDefault:"reports"`
	RetryAttempts  int           `env:"REPORT_MONGO_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REPORT_MONGO_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REPORT_MONGO_CONNECT_TIMEOUT" envDefault:"30s"`
}

// MongoSink inserts one document per report. Record values normalize to
// native BSON types, so json.Number payloads land as numbers instead of
// strings.
type MongoSink struct {
	coll   *mongo.Collection
	client *mongo.Client
}

// NewMongoSink wraps a caller-owned collection handle.
func NewMongoSink(coll *mongo.Collection) *MongoSink {
	if coll == nil {
		panic("report: mongo collection cannot be nil")
	}
	return &MongoSink{coll: coll}
}

// DialMongoSink connects to MongoDB, retrying per the configured attempts
// and interval, and returns a sink that owns the client. Close disconnects it.
func DialMongoSink(ctx context.Context, cfg MongoConfig) (*MongoSink, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.URL).
				SetConnectTimeout(cfg.ConnectTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				sink := NewMongoSink(client.Database(cfg.Database).Collection(cfg.Collection))
				sink.client = client
				return sink, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrMongoNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrMongoNotReady
}

func (s *MongoSink) Ship(ctx context.Context, r Report) error {
	records := make(bson.A, len(r.Records))
	for i, rec := range r.Records {
		records[i] = toBSON(map[string]any(rec))
	}

	doc := bson.M{
		"_id":        r.ID,
		"kind":       string(r.Kind),
		"issues":     r.Issues,
		"records":    records,
		"created_at": r.CreatedAt,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return errors.Join(ErrShipFailed, err)
	}
	return nil
}

// Close disconnects the client when the sink owns it, no-op otherwise.
func (s *MongoSink) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// toBSON rewrites record values into BSON-friendly shapes. json.Number
// becomes int64 or float64; nested maps and lists convert recursively;
// native scalars pass through for the driver to encode.
func toBSON(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return f
		}
		return string(t)
	case string, bool, nil:
		return v
	}
	if m, ok := recordkit.AsMap(v); ok {
		out := bson.M{}
		for k, mv := range m {
			out[k] = toBSON(mv)
		}
		return out
	}
	if l, ok := recordkit.AsList(v); ok {
		out := make(bson.A, len(l))
		for i, lv := range l {
			out[i] = toBSON(lv)
		}
		return out
	}
	return v
}
