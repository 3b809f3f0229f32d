package report

import "errors"

var (
	ErrShipFailed        = errors.New("failed to ship report")
	ErrInvalidConnString = errors.New("failed to parse connection string")
	ErrRedisNotReady     = errors.New("redis did not become ready within the given time period")
	ErrPostgresNotReady  = errors.New("postgres did not become ready within the given time period")
	ErrMongoNotReady     = errors.New("mongo did not become ready within the given time period")
)
