package analysis

import "errors"

var (
	// ErrInvalidConfig reports contradictory or out-of-range analysis
	// parameters.
	ErrInvalidConfig = errors.New("invalid analysis config")

	// ErrEmptyAudio reports a zero-length sample buffer.
	ErrEmptyAudio = errors.New("audio buffer is empty")
)
