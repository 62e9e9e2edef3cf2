package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are process-wide knobs read from the environment.
type Settings struct {
	GitBinary string `env:"RWALK_GIT" envDefault:"git"`
	Output    string `env:"RWALK_OUTPUT" envDefault:"results.txt"`
	LogLevel  string `env:"RWALK_LOG_LEVEL" envDefault:"info"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseLogLevel maps debug|info|warn|error to a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", name)
	}
}
