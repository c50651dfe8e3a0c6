// Package config loads application configuration from environment variables
// with constraint enforcement at the parse boundary.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 and is
// built to pair with confloat: a config struct field typed as a constrained
// value is validated by its policy while the environment is parsed, so an
// out-of-range setting stops the process at startup with the policy's own
// message instead of surfacing later as misbehavior.
//
// # Usage
//
//	type PoolConfig struct {
//	    Workers int                                      `env:"POOL_WORKERS" envDefault:"4"`
//	    Load    confloat.Value[float64, UnitInterval]    `env:"POOL_TARGET_LOAD" envDefault:"0.8"`
//	}
//
//	cfg := config.MustLoad[PoolConfig]()
//
// Each config type is parsed once and cached for the process lifetime;
// ResetCache exists for tests that change the environment between loads.
//
// # Error Handling
//
// Load failures wrap one of the package sentinels (ErrParsing,
// ErrInvalidConfig, ErrLoadingEnv) together with the underlying cause via
// errors.Join, so callers can branch with errors.Is while keeping the full
// message chain.
package config
