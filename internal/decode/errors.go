package decode

import "errors"

var (
	// ErrUnsupportedFormat reports an input file extension the decoder does
	// not recognize.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
