package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"autocare/internal/config"
)

// New constructs a zerolog logger based on config settings.
// Defaults to console output, info level, stdout.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	output := zerolog.New(os.Stdout)
	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "console" {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return output.
		Level(level).
		With().
		Timestamp().
		Str("app", "autocare").
		Str("env", cfg.AppEnv).
		Logger()
}
