package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/once/pkg/logger"
	"github.com/dmitrymomot/once/pkg/once"
	"github.com/dmitrymomot/once/pkg/requirement"
)

// configCache maps a config type to its *once.SharedField.
type configCache struct {
	mu     sync.Mutex
	fields map[reflect.Type]any
}

var (
	globalCache = &configCache{fields: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once

	log atomic.Pointer[slog.Logger]
)

func init() {
	log.Store(logger.Discard())
}

// SetLogger sets the logger used to report loaded configurations. A nil
// logger disables logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logger.Discard()
	}
	log.Store(l)
}

// field returns the cached field for T, creating it with reqs on first use.
// Requirements passed for a type that is already cached are ignored.
func field[T any](reqs []requirement.Requirement[T]) (*once.SharedField[T], error) {
	typ := reflect.TypeFor[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if f, ok := globalCache.fields[typ]; ok {
		return f.(*once.SharedField[T]), nil
	}
	f, err := once.NewShared(typ.String(), reqs...)
	if err != nil {
		return nil, err
	}
	globalCache.fields[typ] = f
	return f, nil
}

// Load loads environment variables into the provided configuration struct.
// Each configuration type is parsed and committed once for the lifetime of
// the process; later calls copy the cached value into v.
//
// The default .env file is read on first use if it exists. The parsed value
// must satisfy reqs, which are bound to the type on its first Load.
// Concurrent first loads may each parse the environment, but only one result
// is committed and every caller receives it.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Username string `env:"DB_USER,required"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var dbConfig DatabaseConfig
//	err := config.Load(&dbConfig, requirement.MustFromPredicate(
//		func(c DatabaseConfig) bool { return c.Port > 0 },
//		"port must be positive",
//	))
func Load[T any](v *T, reqs ...requirement.Requirement[T]) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	f, err := field(reqs)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if cached, err := f.Get(); err == nil {
		*v = cached
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	committed, err := f.TryCommit(parsed)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if committed {
		log.Load().Debug("configuration loaded",
			logger.Component("config"),
			logger.Field("config", f),
		)
	}

	cached, err := f.Get()
	if err != nil {
		return errors.Join(ErrConfigNotLoaded, err)
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, reqs ...requirement.Requirement[T]) {
	if err := Load(v, reqs...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Cached returns the configuration committed for T by a previous Load.
func Cached[T any]() (T, error) {
	globalCache.mu.Lock()
	f, ok := globalCache.fields[reflect.TypeFor[T]()]
	globalCache.mu.Unlock()

	if ok {
		if cfg, err := f.(*once.SharedField[T]).Get(); err == nil {
			return cfg, nil
		}
	}
	var zero T
	return zero, ErrConfigNotLoaded
}

// LoadEnv reads the given .env files into the process environment, later
// files overriding earlier ones and the existing environment. Without
// arguments it reads .env from the working directory. Already cached
// configurations are not affected; see ForceReloadConfig.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Fields handed out before the
// reset keep their values; the next Load of each type starts a new field.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.fields = make(map[reflect.Type]any)
	globalCache.mu.Unlock()
}

// ForceReloadConfig drops the cached configuration for T and loads it again.
func ForceReloadConfig[T any](v *T, reqs ...requirement.Requirement[T]) error {
	if v == nil {
		return ErrNilPointer
	}
	globalCache.mu.Lock()
	delete(globalCache.fields, reflect.TypeFor[T]())
	globalCache.mu.Unlock()

	return Load(v, reqs...)
}
