package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is an optional hook a config struct can implement to run
// cross-field checks after parsing. Field-level constraints belong on the
// field types themselves (confloat values validate during parsing); Validate
// covers relations between fields, e.g. "floor must not exceed ceiling".
type Validator interface {
	Validate() error
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)

	defaultEnvOnce sync.Once
)

// Load parses environment variables into a fresh T, validates it, and caches
// the result so each config type is parsed at most once per process. A
// constrained field whose value fails its policy fails the parse with the
// policy's message; a Validator failure fails the load the same way.
//
//	type ServerConfig struct {
//	    Port    int                                    `env:"PORT" envDefault:"8080"`
//	    Timeout confloat.Value[float64, PositiveSecs]  `env:"TIMEOUT_SECONDS" envDefault:"30"`
//	}
//
//	cfg, err := config.Load[ServerConfig]()
func Load[T any]() (T, error) {
	defaultEnvOnce.Do(func() {
		// A missing .env file is fine; the process environment still applies.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		return cached.(T), nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsing, err)
	}
	if v, ok := any(cfg).(Validator); ok {
		if err := v.Validate(); err != nil {
			return cfg, errors.Join(ErrInvalidConfig, err)
		}
	}

	cache[key] = cfg
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// LoadEnv loads the named .env files into the process environment before any
// config is parsed. Existing environment variables take precedence, matching
// godotenv semantics.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// ResetCache drops every cached config so the next Load re-parses the
// environment. Intended for tests that mutate env vars between loads.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]any)
}

func typeKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.String()
}
