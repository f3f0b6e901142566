// Package logging builds the slog logger used by pact commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vango-dev/pact/internal/config"
)

// New builds a logger writing to stderr as configured by cfg.
func New(cfg *config.Config) *slog.Logger {
	return NewWriter(os.Stderr, cfg)
}

// NewWriter builds a logger writing to w.
func NewWriter(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg == nil {
		cfg = config.New()
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Log.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
