// SPDX-License-Identifier: MIT
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// decodeWAV reads the whole PCM payload through go-audio and scales it to
// float64 by source bit depth.
func decodeWAV(f *os.File) (*Buffer, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", f.Name())
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	interleaved := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		if bitDepth == 8 {
			// 8-bit WAV stores unsigned samples.
			interleaved[i] = (float64(v) - 128) / 128
		} else {
			interleaved[i] = float64(v) / scale
		}
	}

	return &Buffer{
		Samples:    downmix(interleaved, pcm.Format.NumChannels),
		SampleRate: pcm.Format.SampleRate,
	}, nil
}

// decodeMP3 drains the go-mp3 decoder, which always yields 16-bit
// little-endian stereo PCM.
func decodeMP3(f *os.File) (*Buffer, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading MP3 PCM data: %w", err)
	}

	frames := len(raw) / 4 // 2 channels x 2 bytes
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(raw[i*4:]))
		r := int16(binary.LittleEndian.Uint16(raw[i*4+2:]))
		mono[i] = (float64(l) + float64(r)) / 2 / 32768
	}

	return &Buffer{Samples: mono, SampleRate: dec.SampleRate()}, nil
}

// decodeOGG streams float32 samples from the Vorbis reader.
func decodeOGG(f *os.File) (*Buffer, error) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}

	channels := r.Channels()
	var interleaved []float64
	buf := make([]float32, 4096)
	for {
		n, err := r.Read(buf)
		for _, s := range buf[:n] {
			interleaved = append(interleaved, float64(s))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading OGG samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &Buffer{
		Samples:    downmix(interleaved, channels),
		SampleRate: r.SampleRate(),
	}, nil
}

// decodeFLAC parses frames until EOF and scales samples by the stream's
// bits-per-sample.
func decodeFLAC(f *os.File) (*Buffer, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	var interleaved []float64
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading FLAC frame: %w", err)
		}
		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				interleaved = append(interleaved, float64(frame.Subframes[ch].Samples[i])/scale)
			}
		}
	}

	return &Buffer{
		Samples:    downmix(interleaved, channels),
		SampleRate: int(info.SampleRate),
	}, nil
}
