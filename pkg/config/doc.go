// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to
// deliver a small API that loads values from .env files, then parses the
// environment into any Go struct using field tags.
//
// # Usage
//
// Describe the configuration as a struct with env tags:
//
//	type SinkConfig struct {
//	    RedisURL string `env:"REPORT_REDIS_URL,required"`
//	    Stream   string `env:"REPORT_REDIS_STREAM" envDefault:"recordkit:reports"`
//	}
//
// Then load it:
//
//	cfg, err := config.Load[SinkConfig]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The default .env file in the working directory is consulted once per
// process; extra files can be named with WithEnvFiles. WithPrefix namespaces
// every lookup, so several deployments can share one environment:
//
//	cfg := config.MustLoad[SinkConfig](config.WithPrefix("IMPORTER_"))
//
// # Error Handling
//
// Failures wrap two sentinels matchable with errors.Is:
// ErrMissingRequiredEnvVars when variables marked required are absent, and
// ErrFailedToParseEnv for everything else the parser rejects.
package config
