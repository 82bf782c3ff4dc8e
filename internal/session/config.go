package session

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config controls where the engine keeps its state. Values come from the
// environment (CARDDECK_*), with .env loading left to the caller.
type Config struct {
	DataDir     string `env:"CARDDECK_DATA_DIR"`
	DecksDir    string `env:"CARDDECK_DECKS_DIR"`
	JournalPath string `env:"CARDDECK_JOURNAL"`
	LogLevel    string `env:"CARDDECK_LOG_LEVEL"`
}

func DefaultConfig() Config {
	return Config{
		DecksDir: "decks",
		LogLevel: "info",
	}
}

// FromEnv parses a Config from the environment on top of the defaults.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DecksDir == "" {
		c.DecksDir = "decks"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "carddeck")
	}
	if c.JournalPath == "" {
		c.JournalPath = filepath.Join(c.DataDir, "activity.log")
	}
	return nil
}
