package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "ATHLETE"

// Config is read from ATHLETE_* environment variables, after an optional
// .env file in the working directory. Empty CatalogSource and zero
// SuggestLimit mean "not set here" so persisted settings can fill them.
type Config struct {
	DBPath         string        `envconfig:"DB_PATH" default:""`
	CatalogSource  string        `envconfig:"CATALOG_SOURCE" default:""`
	CatalogTimeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	SuggestLimit   int           `envconfig:"SUGGEST_LIMIT" default:"0"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"console"`
}

// Load processes the environment. dotenv lists .env files to read first;
// missing files are ignored.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SuggestLimit < 0 {
		return fmt.Errorf("%s_SUGGEST_LIMIT must be >= 0", envPrefix)
	}
	if c.CatalogTimeout < 0 {
		return fmt.Errorf("%s_CATALOG_TIMEOUT must be >= 0", envPrefix)
	}
	return nil
}

// NewForTesting returns defaults without touching the environment.
func NewForTesting() *Config {
	return &Config{
		CatalogTimeout: 2 * time.Second,
		LogLevel:       "error",
		LogFormat:      "console",
	}
}
