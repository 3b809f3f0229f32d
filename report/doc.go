// Package report turns rejected records into durable, shippable error
// reports. The processor package emits one report per failure condition;
// this package defines what a report looks like and where it can go.
//
// # Architecture
//
// Report is a plain value: a kind, the ordered issue lines, the offending
// record(s), a generated ID, and a timestamp. Destinations implement the
// single-method Sink interface:
//
//	type Sink interface {
//		Ship(ctx context.Context, r Report) error
//	}
//
// Provided sinks:
//
//   - Collector: in-memory accumulation with Reports/Reset, safe for
//     concurrent use. The processor always keeps one.
//   - WriterSink: human-readable blocks to any io.Writer.
//   - SlogSink: structured log records through log/slog.
//   - RedisSink: XADD onto a Redis stream for downstream consumers.
//   - PostgresSink: rows in a reports table, with EnsureSchema bootstrap.
//   - MongoSink: documents in a collection.
//   - MultiSink: fan-out to several sinks at once.
//
// # Usage
//
//	sink, err := report.DialRedisSink(ctx, report.RedisConfig{
//		URL:    "redis://localhost:6379/0",
//		Stream: "recordkit:reports",
//	})
//	if err != nil {
//		return err
//	}
//	defer sink.Close()
//
//	r := report.New(report.KindFieldValidation,
//		[]string{"missing required field: email"},
//		recordkit.Record{"name": "Alice"},
//	)
//	if err := sink.Ship(ctx, r); err != nil {
//		log.Printf("report not shipped: %v", err)
//	}
//
// The Dial helpers own their connection and release it on Close; the New
// constructors wrap a caller-owned client and leave its lifecycle alone.
//
// # Error Handling
//
// Ship failures wrap ErrShipFailed, and dial failures wrap per-backend
// sentinels (ErrRedisNotReady, ErrPostgresNotReady, ErrMongoNotReady), so
// callers can branch with errors.Is. Sinks never retry on their own;
// delivery policy belongs to the caller.
package report
