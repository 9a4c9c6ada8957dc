// Package config loads render settings for the hersenviz CLI from a yaml
// file. Library callers configure the Animator directly through options;
// this file format exists only at the CLI boundary.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	hersenen "github.com/AliceLynxx/BewegendeHersenen"
)

const (
	DefaultColormap = "hot"
	DefaultAlpha    = 0.7
	DefaultInterval = 100
)

// Config mirrors the CLI-facing configuration surface.
type Config struct {
	Colormap string `yaml:"colormap"`
	// OverlayAlpha is the opacity of above-threshold pixels, 0 to 1.
	OverlayAlpha float64 `yaml:"overlay_alpha"`
	// Threshold is either a number (normalized cutoff), the string "auto"
	// (75th percentile per frame) or empty (no masking).
	Threshold yaml.Node `yaml:"threshold"`
	// Interval is the frame delay in milliseconds.
	Interval int `yaml:"interval"`
	// Background is a path to a background image; empty means none.
	// AutoBackground probes the working directory for background.png.
	Background     string `yaml:"background"`
	AutoBackground bool   `yaml:"auto_background"`
	// Output is the animation destination (.gif or .mp4).
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Colormap:     DefaultColormap,
		OverlayAlpha: DefaultAlpha,
		Interval:     DefaultInterval,
	}
}

// Load reads a yaml config file, filling unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // config path is user-chosen
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Colormap == "" {
		cfg.Colormap = DefaultColormap
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	return cfg, nil
}

// ParseThreshold resolves the threshold field's string-or-number union
// into the library's tagged variant.
func (c Config) ParseThreshold() (hersenen.Threshold, error) {
	if c.Threshold.IsZero() {
		return hersenen.NoThreshold(), nil
	}
	var s string
	if err := c.Threshold.Decode(&s); err == nil {
		switch s {
		case "", "none":
			return hersenen.NoThreshold(), nil
		case "auto":
			return hersenen.AutoThreshold(), nil
		}
		// Quoted numbers decode as strings; parse them explicitly.
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return hersenen.LiteralThreshold(v), nil
		}
		return hersenen.Threshold{}, fmt.Errorf("config: threshold must be a number or %q, got %q", "auto", s)
	}
	var v float64
	if err := c.Threshold.Decode(&v); err != nil {
		return hersenen.Threshold{}, fmt.Errorf("config: threshold must be a number or %q", "auto")
	}
	return hersenen.LiteralThreshold(v), nil
}

// Options converts the config into Animator options.
func (c Config) Options() ([]hersenen.Option, error) {
	cmap, err := hersenen.ParseColormap(c.Colormap)
	if err != nil {
		return nil, err
	}
	threshold, err := c.ParseThreshold()
	if err != nil {
		return nil, err
	}
	return []hersenen.Option{
		hersenen.WithColormap(cmap),
		hersenen.WithOverlayAlpha(c.OverlayAlpha),
		hersenen.WithThreshold(threshold),
		hersenen.WithInterval(c.Interval),
	}, nil
}
