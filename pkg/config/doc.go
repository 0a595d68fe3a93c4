// Package config loads application configuration from environment variables
// into typed structs, committing each configuration type exactly once.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Loads values from one or multiple `.env` files (the default `.env` in the
//     working directory is read on first use when present).
//   - Parses the environment into any Go struct using field tags.
//   - Validates the parsed struct against requirements before caching it.
//   - Caches each configuration type in a write-once field so it is committed
//     once for the lifetime of the process.
//
// # Architecture
//
// The package keeps a registry mapping each configuration type to a
// `once.SharedField`. The first Load of a type creates the field with the
// requirements passed to that call. Load parses the environment only while
// the field is unset and publishes the result with TryCommit; goroutines that
// race on the first load all receive the single committed value.
//
// # Usage
//
//	type DatabaseConfig struct {
//	    Host string `env:"DB_HOST,required"`
//	    Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	func main() {
//	    if err := config.LoadEnv("./config/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var db DatabaseConfig
//	    err := config.Load(&db, requirement.MustFromPredicate(
//	        func(c DatabaseConfig) bool { return c.Port > 0 },
//	        "port must be positive",
//	    ))
//	    if err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// Subsequent calls to `config.Load(&db)` are served from the committed field.
// Use SetLogger to receive a debug record when a configuration is committed;
// the record names the type and omits its values.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`: failed to parse env vars into the struct.
//   - `ErrInvalidConfig`: the parsed struct was rejected by a requirement, or
//     a requirement passed to Load was nil. The underlying `once` error is
//     joined, so `errors.Is(err, once.ErrRequirementViolation)` holds too.
//   - `ErrConfigNotLoaded`: Cached was called for a type with no committed value.
//   - `ErrNilPointer`: nil pointer passed to Load, MustLoad or ForceReloadConfig.
//   - `ErrLoadingEnvFile`: a file passed to LoadEnv could not be read.
//
// # Testing Helpers
//
// ResetCache drops every registered field and ForceReloadConfig drops the
// field of one type before loading it again. Neither unsets a field; values
// already handed out stay valid.
package config
