// Package logging builds the process-wide slog logger from configuration.
//
// Commands log through the package-level slog functions, so Setup installs
// the logger as the slog default.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/config"
)

// ParseLevel converts a configured level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Errorf("invalid log level %q", name)
	}
}

// New creates a logger writing to w. When verbose is set the level is forced
// to debug regardless of configuration.
func New(w io.Writer, cfg config.Log, verbose bool) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, errors.Errorf("invalid log format %q", cfg.Format)
	}

	return slog.New(handler), nil
}

// Setup creates a logger with New and installs it as the slog default.
func Setup(w io.Writer, cfg config.Log, verbose bool) error {
	logger, err := New(w, cfg, verbose)
	if err != nil {
		return errors.Wrap(err, "failed to configure logging")
	}

	slog.SetDefault(logger)
	return nil
}
