package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Options carries the parsed command line surface. Paths left empty fall
// back to the configuration file.
type Options struct {
	ConfigPath   string // configuration file (-c)
	Input        string // single-file mode input override (-i)
	Output       string // single-file mode output override (-o)
	BatchFolder  string // batch mode input folder (-b)
	OutputFolder string // batch mode output folder
	Verbose      bool
}

// ParseArgs parses command line arguments into Options.
func ParseArgs() (*Options, error) {
	options := &Options{}

	rootCmd := &cobra.Command{
		Use:           "audiosvg",
		Short:         "Generate deterministic SVG spectrum graphics from audio files",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&options.ConfigPath, "config", "c", "config.toml",
		"Configuration file path (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVarP(&options.Input, "input", "i", "",
		"Input audio file, overrides the configured input_file")
	rootCmd.PersistentFlags().StringVarP(&options.Output, "output", "o", "",
		"Output SVG file, overrides the configured output_file")
	rootCmd.PersistentFlags().StringVarP(&options.BatchFolder, "batch", "b", "",
		"Batch mode: process every supported audio file in this folder")
	rootCmd.PersistentFlags().StringVar(&options.OutputFolder, "output-folder", "",
		"Batch mode output folder (defaults to the input folder)")
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false,
		"Show verbose output")

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	return options, nil
}
