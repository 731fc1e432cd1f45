package main

import (
	"audiosvg/cmd"
	"audiosvg/internal/config"
	"audiosvg/internal/log"
	"audiosvg/internal/pipeline"
)

// main selects the processing mode and runs it to completion. An explicit
// -b flag forces batch mode; otherwise a configured input_folder (with no
// -i override) selects batch mode; anything else is single-file mode.
// Configuration problems and single-file failures exit non-zero; per-file
// failures in batch mode are recorded in the report instead.
func main() {
	opts, err := cmd.ParseArgs()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if opts.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	switch {
	case opts.BatchFolder != "":
		runBatch(cfg, opts.BatchFolder, opts.OutputFolder)

	case cfg.Audio.InputFolder != "" && opts.Input == "":
		outputFolder := opts.OutputFolder
		if outputFolder == "" {
			outputFolder = cfg.Audio.OutputFolder
		}
		runBatch(cfg, cfg.Audio.InputFolder, outputFolder)

	default:
		input := opts.Input
		if input == "" {
			input = cfg.Audio.InputFile
		}
		if input == "" {
			log.Fatalf("no input file: set audio.input_file in the config or pass --input")
		}
		if err := pipeline.Process(cfg, input, opts.Output); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func runBatch(cfg *config.Config, inputDir, outputDir string) {
	if _, err := pipeline.RunBatch(cfg, inputDir, outputDir); err != nil {
		log.Fatalf("batch: %v", err)
	}
}
