package config

// Default values for the spectrum and rendering configuration. They produce
// a sensible bar graphic for common 44.1kHz material when the config file
// leaves fields unset.
const (
	DefaultTimeWindow          = 0.1   // 100ms analysis hop
	DefaultNumBars             = 0     // 0 = derive from duration
	DefaultBarsPerSecond       = 10.0  // used only when num_bars == 0
	DefaultFreqMin             = 0.0   // Hz
	DefaultFreqMax             = 22050 // Hz, Nyquist at 44.1kHz
	DefaultCanvasWidth         = 0     // 0 = size to fit the bars
	DefaultCanvasHeight        = 200   // px
	DefaultBarWidth            = 4     // px
	DefaultBarSpacing          = 2     // px
	DefaultBarColor            = "#3b82f6"
	DefaultBorderRadius        = 0 // square corners
	DefaultMinBarHeight        = 1 // px
	DefaultMaxBarHeightPercent = 90.0
	DefaultVerticalAlign       = "center"
)

// Config represents the main application configuration structure, loaded
// from a TOML or YAML file.
type Config struct {
	Audio     AudioConfig     `toml:"audio" yaml:"audio"`
	Spectrum  SpectrumConfig  `toml:"spectrum" yaml:"spectrum"`
	SVG       SVGConfig       `toml:"svg" yaml:"svg"`
	Alignment AlignmentConfig `toml:"alignment" yaml:"alignment"`
}

// AudioConfig holds input/output path settings. Either the file pair or the
// folder pair is used depending on the processing mode.
type AudioConfig struct {
	InputFile    string `toml:"input_file" yaml:"input_file"`       // single-file mode input
	InputFolder  string `toml:"input_folder" yaml:"input_folder"`   // batch mode input directory
	OutputFile   string `toml:"output_file" yaml:"output_file"`     // single-file mode output
	OutputFolder string `toml:"output_folder" yaml:"output_folder"` // batch mode output directory
	UseAudioName bool   `toml:"use_audio_name" yaml:"use_audio_name"`
}

// SpectrumConfig holds the spectral analysis parameters.
type SpectrumConfig struct {
	TimeWindow    float64 `toml:"time_window" yaml:"time_window"`         // seconds per analysis hop
	NumBars       int     `toml:"num_bars" yaml:"num_bars"`               // 0 = derive from duration
	BarsPerSecond float64 `toml:"bars_per_second" yaml:"bars_per_second"` // used only when num_bars == 0
	FreqMin       float64 `toml:"freq_min" yaml:"freq_min"`               // band restriction lower bound, Hz
	FreqMax       float64 `toml:"freq_max" yaml:"freq_max"`               // band restriction upper bound, Hz
}

// SVGConfig holds the rendering parameters for the output graphic.
type SVGConfig struct {
	Width               int     `toml:"width" yaml:"width"` // 0 = auto
	Height              int     `toml:"height" yaml:"height"`
	BarWidth            int     `toml:"bar_width" yaml:"bar_width"`
	BarSpacing          int     `toml:"bar_spacing" yaml:"bar_spacing"`
	BarColor            string  `toml:"bar_color" yaml:"bar_color"`
	BorderRadius        int     `toml:"border_radius" yaml:"border_radius"` // 0 = square corners
	MinBarHeight        int     `toml:"min_bar_height" yaml:"min_bar_height"`
	MaxBarHeightPercent float64 `toml:"max_bar_height_percent" yaml:"max_bar_height_percent"`
	BackgroundColor     string  `toml:"background_color" yaml:"background_color"` // empty = transparent
}

// AlignmentConfig holds bar placement settings.
type AlignmentConfig struct {
	VerticalAlign string `toml:"vertical_align" yaml:"vertical_align"` // top, center or bottom
}

// NewConfig creates a Config instance with default values. This is the base
// configuration before a config file or command line overrides are applied.
func NewConfig() *Config {
	return &Config{
		Spectrum: SpectrumConfig{
			TimeWindow:    DefaultTimeWindow,
			NumBars:       DefaultNumBars,
			BarsPerSecond: DefaultBarsPerSecond,
			FreqMin:       DefaultFreqMin,
			FreqMax:       DefaultFreqMax,
		},
		SVG: SVGConfig{
			Width:               DefaultCanvasWidth,
			Height:              DefaultCanvasHeight,
			BarWidth:            DefaultBarWidth,
			BarSpacing:          DefaultBarSpacing,
			BarColor:            DefaultBarColor,
			BorderRadius:        DefaultBorderRadius,
			MinBarHeight:        DefaultMinBarHeight,
			MaxBarHeightPercent: DefaultMaxBarHeightPercent,
		},
		Alignment: AlignmentConfig{
			VerticalAlign: DefaultVerticalAlign,
		},
	}
}
