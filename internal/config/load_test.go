package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tomlFixture = `[audio]
input_file = "song.wav"
output_file = "song.svg"
use_audio_name = true

[spectrum]
time_window = 0.05
num_bars = 64
bars_per_second = 8.0
freq_min = 20.0
freq_max = 16000.0

[svg]
width = 800
height = 240
bar_width = 6
bar_spacing = 3
bar_color = "#22c55e"
border_radius = 2
min_bar_height = 2
max_bar_height_percent = 85.0
background_color = "#0f172a"

[alignment]
vertical_align = "bottom"
`

const yamlFixture = `audio:
  input_folder: ./in
  output_folder: ./out
spectrum:
  time_window: 0.2
  num_bars: 32
  freq_min: 50
  freq_max: 8000
svg:
  height: 120
  bar_width: 3
  bar_spacing: 1
  bar_color: "#f97316"
alignment:
  vertical_align: top
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.toml", tomlFixture))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Audio.InputFile != "song.wav" || !cfg.Audio.UseAudioName {
		t.Errorf("audio section mismatch: %+v", cfg.Audio)
	}
	if cfg.Spectrum.TimeWindow != 0.05 || cfg.Spectrum.NumBars != 64 {
		t.Errorf("spectrum section mismatch: %+v", cfg.Spectrum)
	}
	if cfg.Spectrum.FreqMin != 20 || cfg.Spectrum.FreqMax != 16000 {
		t.Errorf("frequency band mismatch: %+v", cfg.Spectrum)
	}
	if cfg.SVG.Width != 800 || cfg.SVG.Height != 240 || cfg.SVG.BarColor != "#22c55e" {
		t.Errorf("svg section mismatch: %+v", cfg.SVG)
	}
	if cfg.SVG.BackgroundColor != "#0f172a" || cfg.SVG.BorderRadius != 2 {
		t.Errorf("svg section mismatch: %+v", cfg.SVG)
	}
	if cfg.Alignment.VerticalAlign != "bottom" {
		t.Errorf("alignment = %q, expected bottom", cfg.Alignment.VerticalAlign)
	}
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", yamlFixture))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Audio.InputFolder != "./in" || cfg.Audio.OutputFolder != "./out" {
		t.Errorf("audio section mismatch: %+v", cfg.Audio)
	}
	if cfg.Spectrum.TimeWindow != 0.2 || cfg.Spectrum.NumBars != 32 {
		t.Errorf("spectrum section mismatch: %+v", cfg.Spectrum)
	}
	if cfg.SVG.Height != 120 || cfg.SVG.BarColor != "#f97316" {
		t.Errorf("svg section mismatch: %+v", cfg.SVG)
	}
	// Unset fields keep their defaults.
	if cfg.Spectrum.BarsPerSecond != DefaultBarsPerSecond {
		t.Errorf("bars_per_second = %g, expected default %g", cfg.Spectrum.BarsPerSecond, DefaultBarsPerSecond)
	}
	if cfg.Alignment.VerticalAlign != "top" {
		t.Errorf("alignment = %q, expected top", cfg.Alignment.VerticalAlign)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.json", `{}`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported config format") {
		t.Errorf("Load error = %v, expected unsupported format", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "config.toml", "[[[not toml")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero time window", func(c *Config) { c.Spectrum.TimeWindow = 0 }},
		{"negative num bars", func(c *Config) { c.Spectrum.NumBars = -2 }},
		{"derived bars without rate", func(c *Config) { c.Spectrum.NumBars = 0; c.Spectrum.BarsPerSecond = 0 }},
		{"negative freq min", func(c *Config) { c.Spectrum.FreqMin = -10 }},
		{"inverted band", func(c *Config) { c.Spectrum.FreqMin = 9000; c.Spectrum.FreqMax = 3000 }},
		{"zero height", func(c *Config) { c.SVG.Height = 0 }},
		{"negative width", func(c *Config) { c.SVG.Width = -1 }},
		{"negative bar width", func(c *Config) { c.SVG.BarWidth = -1 }},
		{"negative bar spacing", func(c *Config) { c.SVG.BarSpacing = -1 }},
		{"negative border radius", func(c *Config) { c.SVG.BorderRadius = -1 }},
		{"negative min bar height", func(c *Config) { c.SVG.MinBarHeight = -1 }},
		{"percent above 100", func(c *Config) { c.SVG.MaxBarHeightPercent = 120 }},
		{"missing bar color", func(c *Config) { c.SVG.BarColor = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted an invalid configuration")
			}
		})
	}
}

func TestValidateAlignmentFallback(t *testing.T) {
	cfg := NewConfig()
	cfg.Alignment.VerticalAlign = "diagonal"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Alignment.VerticalAlign != "center" {
		t.Errorf("alignment = %q, expected fallback to center", cfg.Alignment.VerticalAlign)
	}

	cfg = NewConfig()
	cfg.Alignment.VerticalAlign = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Alignment.VerticalAlign != "center" {
		t.Errorf("alignment = %q, expected center default", cfg.Alignment.VerticalAlign)
	}
}

func TestNewConfigIsValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("default configuration is invalid: %v", err)
	}
}
