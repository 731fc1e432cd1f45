// SPDX-License-Identifier: MIT

// Package analysis turns decoded audio into a fixed-length energy vector.
//
// The pipeline is a short-time Fourier transform, a frequency-band
// restriction, a linear resampling of the per-frame energies to the
// requested bar count, a global-maximum normalization and a fixed
// logarithmic compression. Every value of the result lies in [0, 1].
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"audiosvg/internal/decode"
)

// maxWindowSize caps the transform size for long analysis windows; shorter
// windows use 2x the hop for reasonable frequency resolution.
const maxWindowSize = 2048

// Config holds the spectral analysis parameters.
type Config struct {
	TimeWindow    float64 // seconds advanced per analysis frame, > 0
	NumBars       int     // resolved bar count; 0 = derive from duration
	BarsPerSecond float64 // used only when NumBars == 0, > 0
	FreqMin       float64 // band restriction lower bound, Hz
	FreqMax       float64 // band restriction upper bound, Hz
}

func (c Config) validate() error {
	if c.TimeWindow <= 0 {
		return fmt.Errorf("%w: time window must be positive, got %g", ErrInvalidConfig, c.TimeWindow)
	}
	if c.NumBars < 0 {
		return fmt.Errorf("%w: bar count must not be negative, got %d", ErrInvalidConfig, c.NumBars)
	}
	if c.NumBars == 0 && c.BarsPerSecond <= 0 {
		return fmt.Errorf("%w: bars per second must be positive when bar count is derived, got %g", ErrInvalidConfig, c.BarsPerSecond)
	}
	if c.FreqMin < 0 || c.FreqMin >= c.FreqMax {
		return fmt.Errorf("%w: frequency band [%g, %g] is not a valid range", ErrInvalidConfig, c.FreqMin, c.FreqMax)
	}
	return nil
}

// Analyze computes the per-bar energy vector for buf. The result has
// exactly the resolved bar count entries, each in [0, 1]. Silence yields
// all zeros.
func Analyze(buf *decode.Buffer, cfg Config) ([]float64, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(buf.Samples) == 0 {
		return nil, ErrEmptyAudio
	}

	bars := cfg.NumBars
	if bars == 0 {
		bars = int(math.Round(buf.Duration() * cfg.BarsPerSecond))
	}
	if bars < 1 {
		return nil, fmt.Errorf("%w: resolved bar count is %d, audio too short for %g bars/s", ErrInvalidConfig, bars, cfg.BarsPerSecond)
	}

	hop := int(math.Round(float64(buf.SampleRate) * cfg.TimeWindow))
	if hop < 1 {
		hop = 1
	}
	windowSize := 2 * hop
	if windowSize > maxWindowSize {
		windowSize = maxWindowSize
	}

	raw := frameEnergies(buf.Samples, buf.SampleRate, windowSize, hop, cfg.FreqMin, cfg.FreqMax)

	energy := resampleLinear(raw, bars)
	normalize(energy)
	compress(energy)
	return energy, nil
}

// frameEnergies computes the mean windowed-FFT magnitude over the
// [freqMin, freqMax] bins for every analysis frame. Frames start every hop
// samples; the trailing window is zero-padded. When no bin falls inside
// the band, every frame's energy is zero.
func frameEnergies(samples []float64, sampleRate, windowSize, hop int, freqMin, freqMax float64) []float64 {
	fft := fourier.NewFFT(windowSize)
	binCount := windowSize/2 + 1

	// Hann window coefficients.
	window := make([]float64, windowSize)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(windowSize-1)))
	}

	// Bins whose center frequency lies inside the band, inclusive on both
	// ends.
	var bins []int
	for i := 0; i < binCount; i++ {
		freq := fft.Freq(i) * float64(sampleRate)
		if freq >= freqMin && freq <= freqMax {
			bins = append(bins, i)
		}
	}

	frames := (len(samples) + hop - 1) / hop
	energies := make([]float64, 0, frames)

	input := make([]float64, windowSize)
	coeffs := make([]complex128, binCount)
	for start := 0; start < len(samples); start += hop {
		for i := range input {
			if start+i < len(samples) {
				input[i] = samples[start+i] * window[i]
			} else {
				input[i] = 0
			}
		}

		if len(bins) == 0 {
			energies = append(energies, 0)
			continue
		}

		fft.Coefficients(coeffs, input)
		sum := 0.0
		for _, b := range bins {
			sum += cmplx.Abs(coeffs[b])
		}
		energies = append(energies, sum/float64(len(bins)))
	}

	return energies
}

// resampleLinear maps src onto n points by linear interpolation over a
// normalized [0, 1] position axis. Point j sits at j/(n-1) for n > 1; a
// single target point samples position 0.
func resampleLinear(src []float64, n int) []float64 {
	out := make([]float64, n)
	if len(src) == 0 {
		return out
	}
	if n == 1 || len(src) == 1 {
		for j := range out {
			out[j] = src[0]
		}
		return out
	}

	step := float64(len(src)-1) / float64(n-1)
	for j := range out {
		pos := float64(j) * step
		i := int(pos)
		if i >= len(src)-1 {
			out[j] = src[len(src)-1]
			continue
		}
		frac := pos - float64(i)
		out[j] = src[i] + frac*(src[i+1]-src[i])
	}
	return out
}

// normalize divides in place by the global maximum. A zero maximum
// (silence) leaves the vector untouched.
func normalize(energy []float64) {
	peak := 0.0
	for _, e := range energy {
		if e > peak {
			peak = e
		}
	}
	if peak == 0 {
		return
	}
	for i := range energy {
		energy[i] /= peak
	}
}

// compress applies ln(1+10e)/ln(11) in place, raising low-energy
// visibility while keeping 0 and 1 fixed.
func compress(energy []float64) {
	denom := math.Log1p(10)
	for i, e := range energy {
		energy[i] = math.Log1p(10*e) / denom
	}
}
