package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"audiosvg/internal/config"
)

// writeToneWAV writes a mono 16-bit sine fixture.
func writeToneWAV(t *testing.T, path string, seconds float64, sampleRate int, freq float64) {
	t.Helper()

	n := int(seconds * float64(sampleRate))
	data := make([]int, n)
	for i := range data {
		data[i] = int(16000 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing fixture: %v", err)
	}
}

func testPipelineConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Spectrum.NumBars = 12
	cfg.Spectrum.FreqMax = 4000
	return cfg
}

func TestProcessWritesSVG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tone.wav")
	out := filepath.Join(dir, "tone.svg")
	writeToneWAV(t, in, 1.0, 8000, 440)

	cfg := testPipelineConfig()
	if err := Process(cfg, in, out); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("output is not an SVG document")
	}
	if got := strings.Count(svg, `<rect id="bar_`); got != cfg.Spectrum.NumBars {
		t.Errorf("output has %d bar rectangles, expected %d", got, cfg.Spectrum.NumBars)
	}
}

func TestProcessByteReproducible(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tone.wav")
	writeToneWAV(t, in, 1.0, 8000, 440)

	cfg := testPipelineConfig()
	first := filepath.Join(dir, "first.svg")
	second := filepath.Join(dir, "second.svg")
	if err := Process(cfg, in, first); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := Process(cfg, in, second); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("identical inputs produced different output bytes")
	}
}

func TestProcessDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(in, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Process(testPipelineConfig(), in, filepath.Join(dir, "out.svg")); err == nil {
		t.Error("expected an error for a corrupt input")
	}
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name         string
		useAudioName bool
		outputFile   string
		input        string
		expected     string
	}{
		{"audio name wins", true, "configured.svg", "/music/track.flac", "track.svg"},
		{"configured output", false, "configured.svg", "/music/track.flac", "configured.svg"},
		{"fallback to stem", false, "", "/music/track.flac", "track.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Audio.UseAudioName = tt.useAudioName
			cfg.Audio.OutputFile = tt.outputFile
			if got := resolveOutputPath(cfg, tt.input); got != tt.expected {
				t.Errorf("resolveOutputPath = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"/a/b/song.wav", "song"},
		{"song.ogg", "song"},
		{"archive.tar.flac", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := stem(tt.in); got != tt.expected {
			t.Errorf("stem(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
