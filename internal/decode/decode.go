// Package decode loads audio files into mono float64 sample buffers.
//
// Format support is selected by file extension: WAV, MP3, OGG Vorbis and
// FLAC. Multi-channel input is reduced to a single channel by averaging
// the channels of each frame.
package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Buffer carries decoded single-channel audio. It is immutable once
// returned: later pipeline stages only read from it.
type Buffer struct {
	Samples    []float64 // mono amplitude samples, nominally in [-1, 1]
	SampleRate int       // Hz
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// supportedExts lists the decodable file extensions, lower-case with dot.
var supportedExts = []string{".wav", ".mp3", ".ogg", ".flac"}

// Supported reports whether ext (case-insensitive, with leading dot) maps
// to a known decoder.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range supportedExts {
		if ext == s {
			return true
		}
	}
	return false
}

// SupportedFormats returns the decodable extensions, for error messages.
func SupportedFormats() []string {
	out := make([]string, len(supportedExts))
	copy(out, supportedExts)
	return out
}

// File decodes the audio file at path into a mono Buffer. The format is
// detected by file extension.
func File(path string) (*Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(supportedExts, ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	case ".ogg":
		return decodeOGG(f)
	case ".flac":
		return decodeFLAC(f)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// downmix averages interleaved multi-channel samples into mono frames.
// Mono input is returned unchanged.
func downmix(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}
	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	inv := 1.0 / float64(channels)
	for f := 0; f < frames; f++ {
		sum := 0.0
		base := f * channels
		for c := 0; c < channels; c++ {
			sum += interleaved[base+c]
		}
		mono[f] = sum * inv
	}
	return mono
}
