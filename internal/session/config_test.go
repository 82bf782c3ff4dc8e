package session

import (
	"path/filepath"
	"testing"
)

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.DataDir == "" || cfg.DecksDir != "decks" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	if cfg.JournalPath != filepath.Join(cfg.DataDir, "activity.log") {
		t.Fatalf("expected journal under data dir, got %q", cfg.JournalPath)
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := Config{DataDir: "/tmp/x", DecksDir: "/tmp/decks", JournalPath: "/tmp/j.log", LogLevel: "debug"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.DataDir != "/tmp/x" || cfg.JournalPath != "/tmp/j.log" || cfg.LogLevel != "debug" {
		t.Fatalf("explicit values overwritten: %#v", cfg)
	}
}

func TestFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CARDDECK_DATA_DIR", "/tmp/carddeck-test")
	t.Setenv("CARDDECK_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.DataDir != "/tmp/carddeck-test" || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %#v", cfg)
	}
}
