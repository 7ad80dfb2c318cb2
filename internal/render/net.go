package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestate"
)

// Net draws g as an unfolded net of colored cells: U on top, then L F R B,
// then D. Stickers with no palette entry are drawn as "??".
func Net(g cubestate.Grid, p Palette) string {
	var b strings.Builder
	blank := strings.Repeat(" ", 6)

	cell := func(c cubestate.Color) string {
		hex, err := p.Hex(c)
		if err != nil {
			return "??"
		}
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	}

	writeRow := func(face cubestate.CubeFace, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(cell(g[face][row][col]))
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString(blank)
		writeRow(cubestate.CubeFaceU, row)
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, face := range []cubestate.CubeFace{cubestate.CubeFaceL, cubestate.CubeFaceF, cubestate.CubeFaceR, cubestate.CubeFaceB} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString(blank)
		writeRow(cubestate.CubeFaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}
