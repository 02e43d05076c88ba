// Package config loads server settings from the environment, after
// reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads.
type Config struct {
	Port           string        `env:"PORT"             envDefault:"5000"`
	LogLevel       string        `env:"LOG_LEVEL"        envDefault:"info"`
	Vocab          string        `env:"VOCAB"`                                      // empty: embedded list
	SuccessAtCount int           `env:"SUCCESS_AT_COUNT" envDefault:"3"`            // target before capping
	SecretKey      string        `env:"SECRET_KEY"       envDefault:"dev_secret_change_me"`
	SessionTTL     time.Duration `env:"SESSION_TTL"      envDefault:"24h"`
	Store          string        `env:"STORE"            envDefault:"memory"`       // memory | sqlite
	DBPath         string        `env:"DB_PATH"          envDefault:"./data/vocab.db"`
	DailySalt      string        `env:"DAILY_SALT"       envDefault:"local_dev_salt"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN"    envDefault:"http://localhost:5173"`
	Production     bool          `env:"PRODUCTION"`
}

// Load reads .env files (if present) into the process environment and
// parses the result.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SuccessAtCount < 1 {
		return fmt.Errorf("SUCCESS_AT_COUNT must be positive, got %d", c.SuccessAtCount)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %v", c.SessionTTL)
	}
	switch c.Store {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("STORE must be memory or sqlite, got %q", c.Store)
	}
	return nil
}
