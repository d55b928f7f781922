package cli

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/adapters/file"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/ports"
)

// Config holds environment-driven settings for the CLI.
type Config struct {
	LogLevel    string `env:"ARBOR_LOG_LEVEL" envDefault:"info"`
	Journal     string `env:"ARBOR_JOURNAL"`
	SnapshotDir string `env:"ARBOR_SNAPSHOT_DIR"`
	RedisAddr   string `env:"ARBOR_REDIS_ADDR"`
}

// LoadConfig parses the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Logger builds the application logger for the configured level.
func (c Config) Logger() *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return logging.New(level)
}

// SnapshotStore builds the snapshot backend: redis when ARBOR_REDIS_ADDR is
// set, otherwise JSON files under ARBOR_SNAPSHOT_DIR (or its default).
func (c Config) SnapshotStore() ports.SnapshotStore {
	if c.RedisAddr != "" {
		return redis.New(c.RedisAddr, "", 0)
	}
	return file.NewStore(c.SnapshotDir)
}
