// Package render turns an energy vector into bar geometry and serializes
// the geometry as SVG text. Layout and serialization are separate steps so
// the placement math and the markup formatting are testable on their own.
package render

import (
	"fmt"
	"strings"
)

// Align places a bar vertically within the canvas.
type Align int

const (
	AlignCenter Align = iota
	AlignTop
	AlignBottom
)

// ParseAlign converts a config string (case-insensitive) to an Align.
// Returns AlignCenter and false for unrecognized values; center is the
// defined fallback.
func ParseAlign(s string) (Align, bool) {
	switch strings.ToLower(s) {
	case "top":
		return AlignTop, true
	case "center":
		return AlignCenter, true
	case "bottom":
		return AlignBottom, true
	default:
		return AlignCenter, false
	}
}

// Config holds all rendering parameters for the bar graphic.
type Config struct {
	BarWidth            int     // px, >= 0
	BarSpacing          int     // px, >= 0
	BarColor            string  // fill color of every bar
	BorderRadius        int     // px, > 0 renders rounded corners
	MinBarHeight        int     // px floor on rendered bar height
	MaxBarHeightPercent float64 // tallest bar as a percentage of canvas height
	BackgroundColor     string  // empty = no background rectangle
	CanvasWidth         int     // px, 0 = size to the computed bar row width
	CanvasHeight        int     // px, > 0
	VerticalAlign       Align
}

// Canvas is the resolved drawing surface size.
type Canvas struct {
	Width  int
	Height int
}

// Bar is the geometry of one rendered bar. Bars keep the order of the
// energy vector they were computed from; Index equals the original
// position and identifies the bar in the markup.
type Bar struct {
	Index   int
	X       int
	Width   int
	Y       float64
	Height  float64
	Rounded bool
}

// Layout computes the canvas size and one Bar per energy value.
//
// Canvas width rule: the bar row needs N*(BarWidth+BarSpacing)-BarSpacing
// pixels; a configured CanvasWidth wins when it is non-zero and at least
// that wide, otherwise the computed row width is used.
func Layout(energy []float64, cfg Config) (Canvas, []Bar, error) {
	if cfg.CanvasHeight <= 0 {
		return Canvas{}, nil, fmt.Errorf("%w: canvas height must be positive, got %d", ErrInvalidConfig, cfg.CanvasHeight)
	}
	if cfg.BarWidth < 0 {
		return Canvas{}, nil, fmt.Errorf("%w: bar width must not be negative, got %d", ErrInvalidConfig, cfg.BarWidth)
	}
	if cfg.BarSpacing < 0 {
		return Canvas{}, nil, fmt.Errorf("%w: bar spacing must not be negative, got %d", ErrInvalidConfig, cfg.BarSpacing)
	}

	n := len(energy)
	step := cfg.BarWidth + cfg.BarSpacing

	computed := 0
	if n > 0 {
		computed = n*step - cfg.BarSpacing
	}
	width := computed
	if cfg.CanvasWidth != 0 && cfg.CanvasWidth >= computed {
		width = cfg.CanvasWidth
	}

	maxBarHeight := float64(cfg.CanvasHeight) * cfg.MaxBarHeightPercent / 100

	bars := make([]Bar, n)
	for i, e := range energy {
		h := e * maxBarHeight
		if h < float64(cfg.MinBarHeight) {
			h = float64(cfg.MinBarHeight)
		}

		var y float64
		switch cfg.VerticalAlign {
		case AlignTop:
			y = 0
		case AlignBottom:
			y = float64(cfg.CanvasHeight) - h
		default:
			y = (float64(cfg.CanvasHeight) - h) / 2
		}

		bars[i] = Bar{
			Index:   i,
			X:       i * step,
			Width:   cfg.BarWidth,
			Y:       y,
			Height:  h,
			Rounded: cfg.BorderRadius > 0,
		}
	}

	return Canvas{Width: width, Height: cfg.CanvasHeight}, bars, nil
}
