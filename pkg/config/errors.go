package config

import "errors"

var (
	// ErrMissingRequiredEnvVars is returned when variables marked required
	// are absent from the environment.
	ErrMissingRequiredEnvVars = errors.New("missing required environment variables")

	// ErrFailedToParseEnv is returned when the environment cannot be parsed
	// into the config struct.
	ErrFailedToParseEnv = errors.New("failed to parse environment variables into config")
)
