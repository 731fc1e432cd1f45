// Package pipeline sequences decoding, spectral analysis, bar layout and
// SVG serialization for one audio file, and repeats that over a directory
// in batch mode.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audiosvg/internal/analysis"
	"audiosvg/internal/config"
	"audiosvg/internal/decode"
	"audiosvg/internal/log"
	"audiosvg/internal/render"
)

// Process converts one audio file into an SVG bar graphic. An empty
// outputPath is resolved from the configuration (and the input file's stem
// when use_audio_name is set). Component failures propagate to the caller
// with the file context attached.
func Process(cfg *config.Config, inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = resolveOutputPath(cfg, inputPath)
	}

	buf, err := decode.File(inputPath)
	if err != nil {
		return err
	}
	log.Infof("loaded %s: %.2fs at %dHz", filepath.Base(inputPath), buf.Duration(), buf.SampleRate)

	energy, err := analysis.Analyze(buf, analysisConfig(cfg))
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", filepath.Base(inputPath), err)
	}

	canvas, bars, err := render.Layout(energy, renderConfig(cfg))
	if err != nil {
		return fmt.Errorf("laying out %s: %w", filepath.Base(inputPath), err)
	}

	svg := render.SVG(canvas, bars, renderConfig(cfg))
	if err := os.WriteFile(outputPath, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}

	log.Infof("wrote %s (%dx%d, %d bars)", outputPath, canvas.Width, canvas.Height, len(bars))
	return nil
}

// resolveOutputPath picks the output file name when none was given on the
// command line: the input stem with an .svg extension when use_audio_name
// is set (or nothing else is configured), otherwise the configured
// output_file.
func resolveOutputPath(cfg *config.Config, inputPath string) string {
	if !cfg.Audio.UseAudioName && cfg.Audio.OutputFile != "" {
		return cfg.Audio.OutputFile
	}
	return stem(inputPath) + ".svg"
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func analysisConfig(cfg *config.Config) analysis.Config {
	return analysis.Config{
		TimeWindow:    cfg.Spectrum.TimeWindow,
		NumBars:       cfg.Spectrum.NumBars,
		BarsPerSecond: cfg.Spectrum.BarsPerSecond,
		FreqMin:       cfg.Spectrum.FreqMin,
		FreqMax:       cfg.Spectrum.FreqMax,
	}
}

func renderConfig(cfg *config.Config) render.Config {
	align, _ := render.ParseAlign(cfg.Alignment.VerticalAlign)
	return render.Config{
		BarWidth:            cfg.SVG.BarWidth,
		BarSpacing:          cfg.SVG.BarSpacing,
		BarColor:            cfg.SVG.BarColor,
		BorderRadius:        cfg.SVG.BorderRadius,
		MinBarHeight:        cfg.SVG.MinBarHeight,
		MaxBarHeightPercent: cfg.SVG.MaxBarHeightPercent,
		BackgroundColor:     cfg.SVG.BackgroundColor,
		CanvasWidth:         cfg.SVG.Width,
		CanvasHeight:        cfg.SVG.Height,
		VerticalAlign:       align,
	}
}
