package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/go-drift/gradientview/cmd/gradientview/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	if loggerFromContext(ctx) != log.Default() {
		t.Error("expected default logger without one attached")
	}
	if cfg := configFromContext(ctx); cfg.Density != config.DefaultDensity || cfg.Format != config.DefaultFormat {
		t.Errorf("default config = %+v", cfg)
	}

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	cfg := &config.Resolved{Density: 3}
	ctx = withConfig(withLogger(ctx, l), cfg)
	if loggerFromContext(ctx) != l {
		t.Error("logger not retrieved")
	}
	if configFromContext(ctx) != cfg {
		t.Error("config not retrieved")
	}
}
