package kontonummer

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/kontonummer/pkg/config"
	"github.com/dmitrymomot/kontonummer/pkg/logger"
)

// Config holds environment driven settings for NewFromConfig.
type Config struct {
	// RegistryFile points to a YAML registry replacing the built-in one.
	RegistryFile string `env:"KONTONUMMER_REGISTRY_FILE"`
	// StrictChecksum turns bad checksum warnings into errors.
	StrictChecksum bool   `env:"KONTONUMMER_STRICT_CHECKSUM" envDefault:"false"`
	LogLevel       string `env:"KONTONUMMER_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"KONTONUMMER_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Validator from cfg. Options in opts are applied last
// and override the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Validator, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("kontonummer config: %w", err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("kontonummer config: %w", err)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Service(component)),
	)
	options := []Option{WithLogger(log)}

	if cfg.RegistryFile != "" {
		reg, err := LoadRegistryFile(cfg.RegistryFile)
		if err != nil {
			log.Error("registry file rejected", slog.String("path", cfg.RegistryFile), logger.Error(err))
			return nil, fmt.Errorf("kontonummer config: %w", err)
		}
		log.Info("registry loaded",
			slog.String("path", cfg.RegistryFile),
			slog.Int("rules", len(reg)),
			slog.Int("banks", len(reg.BankNames())),
		)
		options = append(options, WithRegistry(reg))
	}
	if cfg.StrictChecksum {
		options = append(options, WithStrictChecksum())
	}

	return New(append(options, opts...)...), nil
}
