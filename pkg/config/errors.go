package config

import "errors"

var (
	// ErrParsing is returned when the environment cannot be parsed into the
	// config struct, including when a constrained field rejects its value.
	ErrParsing = errors.New("failed to parse environment into config")

	// ErrInvalidConfig is returned when a parsed config fails its own
	// Validate hook.
	ErrInvalidConfig = errors.New("config validation failed")

	// ErrLoadingEnv is returned when an explicitly named .env file cannot
	// be loaded.
	ErrLoadingEnv = errors.New("failed to load env file")
)
