// Package config loads process configuration from the environment, after
// merging an optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the full process configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Port     string `env:"PORT" envDefault:"5175"`

	// Vocabulary source; empty means the embedded list.
	VocabFile     string `env:"WORDLE_VOCAB_FILE"`
	VocabStrict   bool   `env:"WORDLE_VOCAB_STRICT" envDefault:"true"`
	VocabExpected int    `env:"WORDLE_VOCAB_EXPECTED" envDefault:"0"`

	Store         string        `env:"WORDLE_STORE" envDefault:"memory"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"./data/wordle.db"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	JWTSecret    string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	DailySalt    string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load reads .env files (missing files are ignored) and parses the
// environment into a Config.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("config: WORDLE_STORE must be memory, redis or sqlite, got %q", c.Store)
	}
	if c.VocabExpected < 0 {
		return fmt.Errorf("config: WORDLE_VOCAB_EXPECTED must not be negative")
	}
	return nil
}
