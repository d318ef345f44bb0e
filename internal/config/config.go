package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

const defaultAPITimeout = 15 * time.Second

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	Storage      string        `yaml:"storage"`
	DatabasePath string        `yaml:"database_path"`
	CORSOrigin   string        `yaml:"cors_origin"`
	Log          LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads defaults from the environment and overlays the YAML file
// at path, if one is given.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("WATCH_ADDR", ":5000"),
		APITimeout:   defaultAPITimeout,
		Storage:      getEnv("WATCH_STORAGE", StorageMemory),
		DatabasePath: getEnv("WATCH_DATABASE_PATH", "watchrepair.db"),
		CORSOrigin:   getEnv("WATCH_CORS_ORIGIN", "*"),
		Log: LogConfig{
			Level:  getEnv("WATCH_LOG_LEVEL", "info"),
			Format: getEnv("WATCH_LOG_FORMAT", "json"),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate checks the configuration and fills in the timeout default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr must not be empty")
	}
	switch c.Storage {
	case StorageMemory:
	case StorageSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			return errors.New("database_path is required for sqlite storage")
		}
	default:
		return fmt.Errorf("unknown storage %q (want %q or %q)", c.Storage, StorageMemory, StorageSQLite)
	}
	if c.APITimeout == 0 {
		c.APITimeout = defaultAPITimeout
	}
	if c.APITimeout < 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.APITimeout)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Logger builds the process logger writing to stdout.
func (c *Config) Logger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
