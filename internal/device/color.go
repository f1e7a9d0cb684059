package device

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/padstorm/internal/mapping"
)

// palette maps each LED palette entry to the color the hardware shows.
var palette = map[mapping.LedColor]colorful.Color{
	mapping.LedRed:    {R: 1, G: 0, B: 0},
	mapping.LedOrange: {R: 1, G: 0.5, B: 0},
	mapping.LedYellow: {R: 1, G: 1, B: 0},
	mapping.LedGreen:  {R: 0, G: 1, B: 0},
	mapping.LedCyan:   {R: 0, G: 1, B: 1},
	mapping.LedBlue:   {R: 0, G: 0, B: 1},
	mapping.LedPurple: {R: 0.5, G: 0, B: 1},
}

// ColorRGB returns the RGB bytes a transport sends for a palette entry.
// Unknown values fall back to cyan, the factory default.
func ColorRGB(c mapping.LedColor) (r, g, b uint8) {
	col, ok := palette[c]
	if !ok {
		col = palette[mapping.LedCyan]
	}
	return col.RGB255()
}
