// Package logging builds the zerolog logger shared by the CLI and services.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// Level defaults to warn so routine commands stay quiet.
	Level zerolog.Level
	// Pretty switches to the human-readable console writer.
	Pretty bool
	// Output defaults to os.Stderr; stdout belongs to command output.
	Output io.Writer
}

// ParseLevel accepts zerolog level names plus "warning", "off" and "none".
// An empty string selects warn.
func ParseLevel(raw string) (zerolog.Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(raw)); name {
	case "":
		return zerolog.WarnLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none":
		return zerolog.Disabled, nil
	default:
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return zerolog.NoLevel, fmt.Errorf("unknown log level %q", raw)
		}
		return level, nil
	}
}

func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.Level == zerolog.NoLevel {
		config.Level = zerolog.WarnLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	writer := config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).
		Level(config.Level).
		With().
		Timestamp().
		Logger()
}
