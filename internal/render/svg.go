// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"strings"
)

// SVG serializes the canvas and bars as SVG markup. The function is pure:
// identical inputs produce byte-identical output. Pixel positions and
// widths are integers; bar heights and y offsets carry two decimals.
func SVG(c Canvas, bars []Bar, cfg Config) string {
	lines := make([]string, 0, len(bars)+5)

	lines = append(lines, fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		c.Width, c.Height, c.Width, c.Height))

	if cfg.BackgroundColor != "" {
		lines = append(lines, fmt.Sprintf(
			`  <rect width="%d" height="%d" fill="%s"/>`,
			c.Width, c.Height, cfg.BackgroundColor))
	}

	lines = append(lines, `  <g id="spectrum">`)

	for _, b := range bars {
		if b.Rounded {
			lines = append(lines, fmt.Sprintf(
				`    <rect id="bar_%d" width="%d" height="%.2f" x="%d" y="%.2f" fill="%s" rx="%d" ry="%d"/>`,
				b.Index, b.Width, b.Height, b.X, b.Y, cfg.BarColor, cfg.BorderRadius, cfg.BorderRadius))
		} else {
			lines = append(lines, fmt.Sprintf(
				`    <rect id="bar_%d" width="%d" height="%.2f" x="%d" y="%.2f" fill="%s"/>`,
				b.Index, b.Width, b.Height, b.X, b.Y, cfg.BarColor))
		}
	}

	lines = append(lines, `  </g>`, `</svg>`)

	return strings.Join(lines, "\n")
}
