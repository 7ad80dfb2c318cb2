// Package render draws sticker grids: a colored net for the terminal and a
// 3D view of the three visible faces as SVG.
package render

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cubestate"
)

// ErrUnknownColor is returned when a grid holds a color the palette cannot
// draw.
var ErrUnknownColor = errors.New("render: unknown color")

// Palette maps sticker colors to #RRGGBB strings.
type Palette map[cubestate.Color]string

// DefaultPalette returns the standard sticker colors.
func DefaultPalette() Palette {
	return Palette{
		cubestate.White:  "#FFFFFF",
		cubestate.Yellow: "#FFD500",
		cubestate.Red:    "#C41E3A",
		cubestate.Orange: "#FF5800",
		cubestate.Green:  "#009E60",
		cubestate.Blue:   "#0051BA",
	}
}

// WithOverrides returns a copy of p with the given colors replaced.
func (p Palette) WithOverrides(overrides map[cubestate.Color]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for c, hex := range p {
		out[c] = hex
	}
	for c, hex := range overrides {
		out[c] = hex
	}
	return out
}

// Hex returns the drawing color of c.
func (p Palette) Hex(c cubestate.Color) (string, error) {
	hex, ok := p[c]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownColor, c)
	}
	return hex, nil
}
