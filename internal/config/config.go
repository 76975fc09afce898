package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DatabasePath string
	HTTPAddr     string
	LogLevel     string
	// ShuffleSeed makes deals reproducible when HasSeed is set.
	ShuffleSeed int64
	HasSeed     bool
}

// Load reads envFile into the environment and builds the config from it.
// With an empty envFile an optional ".env" is tried; an explicit file that
// cannot be read is an error.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	dbPath, ok := os.LookupEnv("DATABASE_PATH")
	if !ok {
		dbPath = "./blackjack.db"
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabasePath: dbPath,
		HTTPAddr:     addr,
		LogLevel:     level,
	}

	if raw := os.Getenv("SHUFFLE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SHUFFLE_SEED is not an integer: %w", err)
		}
		cfg.ShuffleSeed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// RequireToken is checked by the Telegram shell only.
func (c *Config) RequireToken() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	return nil
}
