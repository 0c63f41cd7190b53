// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing:
//
//	type Config struct {
//	    RegistryFile string `env:"KONTONUMMER_REGISTRY_FILE"`
//	    LogLevel     string `env:"KONTONUMMER_LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Every configuration type is parsed once and cached for the lifetime of the
// process. Reload and ResetCache drop cached values, which tests use after
// changing the environment.
//
// Errors wrap the sentinels ErrParsingConfig, ErrInvalidConfigType,
// ErrNilPointer and ErrLoadingEnvFile and can be matched with errors.Is.
package config
