// Package logger configures the structured log/slog logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config selects level, format and destination. Output is "stderr",
// "stdout", "discard" or a file path that is appended to.
type Config struct {
	Level  Level  `yaml:"level" toml:"level"`
	Format Format `yaml:"format" toml:"format"`
	Output string `yaml:"output" toml:"output"`
}

// DefaultConfig logs warnings and errors as text to stderr.
func DefaultConfig() Config {
	return Config{Level: LevelWarn, Format: FormatText, Output: "stderr"}
}

type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New builds a Logger for config. If a file output cannot be opened the
// logger falls back to stderr and says so.
func New(config Config) *Logger {
	var writer io.Writer
	var closer io.Closer
	switch config.Output {
	case "", "stderr":
		writer = os.Stderr
	case "stdout":
		writer = os.Stdout
	case "discard":
		writer = io.Discard
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s, using stderr: %v\n", config.Output, err)
			writer = os.Stderr
		} else {
			writer = file
			closer = file
		}
	}

	l := NewWithWriter(config, writer)
	l.closer = closer
	return l
}

// NewWithWriter builds a Logger that writes to w, ignoring config.Output.
func NewWithWriter(config Config, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Close releases a log file opened by New.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

func (lv Level) slogLevel() slog.Level {
	switch lv {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
