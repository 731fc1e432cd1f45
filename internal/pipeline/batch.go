package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audiosvg/internal/config"
	"audiosvg/internal/decode"
	"audiosvg/internal/log"
)

// Failure records one file that could not be processed in batch mode.
type Failure struct {
	Name string
	Err  error
}

// BatchReport tallies a batch run. Failures keep processing order.
type BatchReport struct {
	Total     int
	Succeeded int
	Failures  []Failure
}

// RunBatch processes every supported audio file in inputDir, writing one
// SVG per file to outputDir (inputDir when empty, created if missing).
// Files are handled in sorted name order. A failing file is recorded and
// skipped; only setup problems (unreadable input dir, uncreatable output
// dir) fail the batch itself.
func RunBatch(cfg *config.Config, inputDir, outputDir string) (*BatchReport, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if decode.Supported(filepath.Ext(e.Name())) {
			names = append(names, e.Name())
		}
	}

	if outputDir == "" {
		outputDir = inputDir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output folder: %w", err)
	}

	report := &BatchReport{Total: len(names)}
	if len(names) == 0 {
		log.Warnf("no supported audio files in %s (supported: %s)", inputDir, strings.Join(decode.SupportedFormats(), ", "))
		return report, nil
	}

	log.Infof("found %d audio files in %s", len(names), inputDir)
	for i, name := range names {
		log.Infof("[%d/%d] processing %s", i+1, len(names), name)

		in := filepath.Join(inputDir, name)
		out := filepath.Join(outputDir, stem(name)+".svg")
		if err := Process(cfg, in, out); err != nil {
			log.Errorf("failed to process %s: %v", name, err)
			report.Failures = append(report.Failures, Failure{Name: name, Err: err})
			continue
		}
		report.Succeeded++
	}

	log.Infof("batch complete: %d/%d succeeded", report.Succeeded, report.Total)
	for _, f := range report.Failures {
		log.Warnf("  %s: %v", f.Name, f.Err)
	}

	return report, nil
}
