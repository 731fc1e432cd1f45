package render

import "errors"

var (
	// ErrInvalidConfig reports out-of-range rendering parameters.
	ErrInvalidConfig = errors.New("invalid render config")
)
