package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/smith3v/tg-word-drill/pkg/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultSessionTTL = 30 * time.Minute
)

type Config struct {
	Database DatabaseConfig `json:"database"`
	Telegram TelegramConfig `json:"telegram"`
	Logging  LoggingConfig  `json:"logging"`
	Catalog  CatalogConfig  `json:"catalog"`
	Session  SessionConfig  `json:"session"`
	HTTP     HTTPConfig     `json:"http"`
}

type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
	// Path is the sqlite file; DSN overrides every other field when set.
	Path string `json:"path"`
	DSN  string `json:"dsn"`
}

type TelegramConfig struct {
	Token string `json:"token"`
}

type LoggingConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	Format    string `json:"format"`
	GormLevel string `json:"gorm_level"`
}

type CatalogConfig struct {
	SeedFile string `json:"seed_file"`
}

type SessionConfig struct {
	TTLMinutes int `json:"ttl_minutes"`
}

type HTTPConfig struct {
	Addr string `json:"addr"`
}

var AppConfig Config

// LoadConfig reads the JSON file, then applies .env and environment overrides.
// A missing .env file is not an error.
func LoadConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		logger.Error("failed to open config file", "error", err)
		return err
	}
	defer file.Close()

	var cfg Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		logger.Error("failed to decode config file", "error", err)
		return err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error("failed to load .env file", "error", err)
	}
	cfg.applyEnv()

	AppConfig = cfg
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("WORDBOT_TELEGRAM_TOKEN")); v != "" {
		c.Telegram.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("WORDBOT_DATABASE_DRIVER")); v != "" {
		c.Database.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("WORDBOT_DATABASE_DSN")); v != "" {
		c.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("WORDBOT_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Telegram.Token) == "" {
		errs = append(errs, errors.New("telegram token is required"))
	}
	switch c.Database.DriverName() {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	if c.Session.TTLMinutes < 0 {
		errs = append(errs, errors.New("session ttl must not be negative"))
	}
	return errors.Join(errs...)
}

// DriverName defaults to postgres, as every deployment before sqlite support did.
func (d DatabaseConfig) DriverName() string {
	driver := strings.ToLower(strings.TrimSpace(d.Driver))
	if driver == "" {
		return DriverPostgres
	}
	return driver
}

func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return defaultSessionTTL
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}
