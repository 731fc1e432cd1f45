// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"audiosvg/internal/log"
	"audiosvg/internal/render"
)

// Load reads the configuration file at path, applies it on top of the
// defaults and validates the result. The file format is selected by
// extension: .toml (the default config name is config.toml) or .yaml/.yml.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks field values and normalizes the vertical alignment.
// An unrecognized alignment falls back to center with a warning rather
// than failing, matching the renderer's defined fallback.
func (c *Config) Validate() error {
	s := &c.Spectrum
	if s.TimeWindow <= 0 {
		return fmt.Errorf("spectrum.time_window must be positive, got %g", s.TimeWindow)
	}
	if s.NumBars < 0 {
		return fmt.Errorf("spectrum.num_bars must not be negative, got %d", s.NumBars)
	}
	if s.NumBars == 0 && s.BarsPerSecond <= 0 {
		return fmt.Errorf("spectrum.bars_per_second must be positive when num_bars is 0, got %g", s.BarsPerSecond)
	}
	if s.FreqMin < 0 {
		return fmt.Errorf("spectrum.freq_min must not be negative, got %g", s.FreqMin)
	}
	if s.FreqMin >= s.FreqMax {
		return fmt.Errorf("spectrum.freq_min (%g) must be below freq_max (%g)", s.FreqMin, s.FreqMax)
	}

	v := &c.SVG
	if v.Height <= 0 {
		return fmt.Errorf("svg.height must be positive, got %d", v.Height)
	}
	if v.Width < 0 {
		return fmt.Errorf("svg.width must not be negative, got %d", v.Width)
	}
	if v.BarWidth < 0 {
		return fmt.Errorf("svg.bar_width must not be negative, got %d", v.BarWidth)
	}
	if v.BarSpacing < 0 {
		return fmt.Errorf("svg.bar_spacing must not be negative, got %d", v.BarSpacing)
	}
	if v.BorderRadius < 0 {
		return fmt.Errorf("svg.border_radius must not be negative, got %d", v.BorderRadius)
	}
	if v.MinBarHeight < 0 {
		return fmt.Errorf("svg.min_bar_height must not be negative, got %d", v.MinBarHeight)
	}
	if v.MaxBarHeightPercent < 0 || v.MaxBarHeightPercent > 100 {
		return fmt.Errorf("svg.max_bar_height_percent must be in [0,100], got %g", v.MaxBarHeightPercent)
	}
	if v.BarColor == "" {
		return fmt.Errorf("svg.bar_color must be set")
	}

	if c.Alignment.VerticalAlign == "" {
		c.Alignment.VerticalAlign = DefaultVerticalAlign
	} else if _, ok := render.ParseAlign(c.Alignment.VerticalAlign); !ok {
		log.Warnf("configuration: unrecognized alignment.vertical_align %q, falling back to center", c.Alignment.VerticalAlign)
		c.Alignment.VerticalAlign = DefaultVerticalAlign
	}

	return nil
}
