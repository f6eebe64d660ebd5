// Package config loads the optional .gradientview.yaml project file that
// supplies defaults for the gradientview CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/gradientview/pkg/graphics"
)

// FileName is the project configuration file looked up by FindProjectRoot.
const FileName = ".gradientview.yaml"

// Defaults applied when neither the file nor a flag sets a value.
const (
	DefaultDensity = 1.0
	DefaultWidth   = 160.0
	DefaultHeight  = 48.0
	DefaultFormat  = "png"
)

// Config represents the optional .gradientview.yaml configuration.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
	Preview PreviewConfig `yaml:"preview"`
}

// RenderConfig contains render defaults.
type RenderConfig struct {
	Density float64 `yaml:"density,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty"`
	Format  string  `yaml:"format,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	File    string `yaml:"file,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// PreviewConfig contains terminal preview settings.
type PreviewConfig struct {
	Background        *graphics.Color `yaml:"background,omitempty"`
	ParentInteractive bool            `yaml:"parentInteractive,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root              string
	Density           float64
	Width             float64
	Height            float64
	Format            string
	LogFile           string
	Verbose           bool
	Background        graphics.Color
	ParentInteractive bool
}

// LoadOptional reads .gradientview.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads .gradientview.yaml (if present) from dir and resolves
// defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:              dir,
		Density:           cfg.Render.Density,
		Width:             cfg.Render.Width,
		Height:            cfg.Render.Height,
		Format:            strings.ToLower(strings.TrimSpace(cfg.Render.Format)),
		LogFile:           strings.TrimSpace(cfg.Log.File),
		Verbose:           cfg.Log.Verbose,
		Background:        graphics.ColorBlack,
		ParentInteractive: cfg.Preview.ParentInteractive,
	}
	if r.Density <= 0 {
		r.Density = DefaultDensity
	}
	if r.Width <= 0 {
		r.Width = DefaultWidth
	}
	if r.Height <= 0 {
		r.Height = DefaultHeight
	}
	if r.Format == "" {
		r.Format = DefaultFormat
	}
	if err := validateFormat(r.Format); err != nil {
		return nil, err
	}
	if cfg.Preview.Background != nil {
		r.Background = *cfg.Preview.Background
	}
	if r.LogFile != "" && !filepath.IsAbs(r.LogFile) {
		r.LogFile = filepath.Join(dir, r.LogFile)
	}

	return r, nil
}

// FindProjectRoot walks up from start looking for .gradientview.yaml. When
// no directory has one, start itself is returned.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, FileName)); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir, nil
		}
		d = parent
	}
}

func validateFormat(format string) error {
	switch format {
	case "png", "bmp", "tiff":
		return nil
	}
	return fmt.Errorf("unsupported render format %q (use png, bmp or tiff)", format)
}
