// Package logging builds the slog loggers used by the wayfind command.
// Library packages never log; only the CLI does.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	// TextFormat writes key=value lines.
	TextFormat Format = "text"
	// JSONFormat writes one JSON object per record.
	JSONFormat Format = "json"
)

// Config holds logger settings.
type Config struct {
	Level  string
	Format Format
}

// levelSilent sits above every standard level.
const levelSilent = slog.Level(100)

// New returns a logger writing to w. Unknown formats fall back to text.
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch Format(strings.ToLower(string(cfg.Format))) {
	case JSONFormat:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelSilent}))
}

// ParseLevel converts debug, info, warn(ing), error or off (case-insensitive)
// to a slog.Level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "off", "none", "quiet":
		return levelSilent, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// ValidFormat reports whether f names a supported format.
func ValidFormat(f Format) bool {
	switch Format(strings.ToLower(string(f))) {
	case TextFormat, JSONFormat:
		return true
	}
	return false
}
