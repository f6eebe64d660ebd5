package cmd

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/go-drift/gradientview/cmd/gradientview/internal/config"
	"github.com/go-drift/gradientview/pkg/graphics"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the command logger, or log.Default() when none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg *config.Resolved) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the resolved configuration, falling back to the
// built-in defaults.
func configFromContext(ctx context.Context) *config.Resolved {
	if cfg, ok := ctx.Value(configKey).(*config.Resolved); ok {
		return cfg
	}
	return &config.Resolved{
		Density:    config.DefaultDensity,
		Width:      config.DefaultWidth,
		Height:     config.DefaultHeight,
		Format:     config.DefaultFormat,
		Background: graphics.ColorBlack,
	}
}
