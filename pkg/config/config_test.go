package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigSuccess(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})
	t.Setenv("WORDBOT_TELEGRAM_TOKEN", "")
	t.Setenv("WORDBOT_DATABASE_DRIVER", "")
	t.Setenv("WORDBOT_DATABASE_DSN", "")
	t.Setenv("WORDBOT_LOG_LEVEL", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	content := `{
		"database": {
			"driver": "postgres",
			"host": "localhost",
			"user": "test-user",
			"password": "test-pass",
			"dbname": "testdb",
			"port": 5433,
			"sslmode": "disable"
		},
		"telegram": {
			"token": "test-token"
		},
		"logging": {
			"level": "debug",
			"format": "json"
		},
		"catalog": {
			"seed_file": "extra.csv"
		},
		"session": {
			"ttl_minutes": 5
		}
	}`

	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if AppConfig.Database.Host != "localhost" {
		t.Errorf("expected host to be localhost, got %q", AppConfig.Database.Host)
	}
	if AppConfig.Database.Port != 5433 {
		t.Errorf("expected port to be 5433, got %d", AppConfig.Database.Port)
	}
	if AppConfig.Telegram.Token != "test-token" {
		t.Errorf("expected token to be test-token, got %q", AppConfig.Telegram.Token)
	}
	if AppConfig.Logging.Format != "json" {
		t.Errorf("expected json log format, got %q", AppConfig.Logging.Format)
	}
	if AppConfig.Catalog.SeedFile != "extra.csv" {
		t.Errorf("expected seed file extra.csv, got %q", AppConfig.Catalog.SeedFile)
	}
	if got := AppConfig.Session.TTL(); got != 5*time.Minute {
		t.Errorf("expected 5m session ttl, got %v", got)
	}
	if err := AppConfig.Validate(); err != nil {
		t.Errorf("expected config to validate, got %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	content := `{"database": {"driver": "postgres"}, "telegram": {"token": "file-token"}}`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	t.Setenv("WORDBOT_TELEGRAM_TOKEN", "env-token")
	t.Setenv("WORDBOT_DATABASE_DRIVER", "sqlite")
	t.Setenv("WORDBOT_DATABASE_DSN", "file:bot.db")
	t.Setenv("WORDBOT_LOG_LEVEL", "error")

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if AppConfig.Telegram.Token != "env-token" {
		t.Errorf("expected env token, got %q", AppConfig.Telegram.Token)
	}
	if AppConfig.Database.DriverName() != DriverSQLite {
		t.Errorf("expected sqlite driver, got %q", AppConfig.Database.DriverName())
	}
	if AppConfig.Database.DSN != "file:bot.db" {
		t.Errorf("expected env dsn, got %q", AppConfig.Database.DSN)
	}
	if AppConfig.Logging.Level != "error" {
		t.Errorf("expected env log level, got %q", AppConfig.Logging.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	if err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error when loading a missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty config")
	}
	if !strings.Contains(err.Error(), "telegram token") {
		t.Fatalf("expected token error, got %v", err)
	}

	cfg.Telegram.Token = "x"
	cfg.Database.Driver = "mysql"
	err = cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "mysql") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}

	cfg.Database.Driver = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected empty driver to default to postgres, got %v", err)
	}
}

func TestSessionTTLDefault(t *testing.T) {
	if got := (SessionConfig{}).TTL(); got != defaultSessionTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultSessionTTL, got)
	}
}
