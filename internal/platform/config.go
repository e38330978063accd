package platform

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config is the environment configuration of the CLI.
type Config struct {
	Dir            string        `env:"FOLIO_DIR" default:"."`
	Adapter        string        `env:"FOLIO_ADAPTER" default:"fs"`
	Codec          string        `env:"FOLIO_CODEC" default:"json"`
	LogLevel       string        `env:"FOLIO_LOG_LEVEL" default:"info"`
	LogFormat      string        `env:"FOLIO_LOG_FORMAT" default:"text"`
	Debounce       time.Duration `env:"FOLIO_DEBOUNCE" default:"500ms"`
	StatusDuration time.Duration `env:"FOLIO_STATUS_DURATION" default:"2s"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if cfg.Debounce <= 0 {
		return nil, fmt.Errorf("FOLIO_DEBOUNCE must be positive, got %s", cfg.Debounce)
	}
	if cfg.StatusDuration <= 0 {
		return nil, fmt.Errorf("FOLIO_STATUS_DURATION must be positive, got %s", cfg.StatusDuration)
	}
	return &cfg, nil
}

// Options converts the configuration into workspace options.
func (c *Config) Options() []Option {
	return []Option{
		WithAdapter(c.Adapter),
		WithCodec(c.Codec),
		WithDebounce(c.Debounce),
		WithStatusDuration(c.StatusDuration),
	}
}
