package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how Load reads the environment.
type Option func(*options)

type options struct {
	envFiles []string
	prefix   string
}

// WithEnvFiles loads the named dotenv files into the process environment
// before parsing. Missing files are ignored, and variables already set in
// the environment win over file values.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithPrefix namespaces every env tag lookup. With the prefix "RECORDKIT_"
// a field tagged PROCESSOR_WORKERS resolves from RECORDKIT_PROCESSOR_WORKERS.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into a fresh config struct based on its
// env field tags. The default .env file is consulted once per process; files
// named via WithEnvFiles load on every call.
func Load[T any](opts ...Option) (T, error) {
	var cfg T

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	for _, path := range o.envFiles {
		_ = godotenv.Load(path)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
		if errors.Is(err, env.VarIsNotSetError{}) {
			return cfg, errors.Join(ErrMissingRequiredEnvVars, err)
		}
		return cfg, errors.Join(ErrFailedToParseEnv, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics when loading fails, for configuration
// the process cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
