package cubestate

import (
	"fmt"
	"strings"
)

// Facelet identifies one sticker: a face and a (row, column) on it.
//
// Every face is read as seen from outside the cube. Rows of U count from
// the back edge towards the front, rows of D from the front towards the
// back, and rows of the four side faces from the top down.
type Facelet struct {
	Face CubeFace
	Row  int
	Col  int
}

// Grid is a 6×3×3 sticker layout indexed by [CubeFace][row][col].
type Grid [NumFaces][3][3]Color

// cornerFacelets lists the three stickers of every corner slot. The U or D
// sticker comes first; the other two follow clockwise around the corner.
var cornerFacelets = [NumCorners][3]Facelet{
	{{CubeFaceU, 0, 0}, {CubeFaceL, 0, 0}, {CubeFaceB, 0, 2}}, // UBL
	{{CubeFaceU, 0, 2}, {CubeFaceB, 0, 0}, {CubeFaceR, 0, 2}}, // UBR
	{{CubeFaceU, 2, 2}, {CubeFaceR, 0, 0}, {CubeFaceF, 0, 2}}, // UFR
	{{CubeFaceU, 2, 0}, {CubeFaceF, 0, 0}, {CubeFaceL, 0, 2}}, // UFL
	{{CubeFaceD, 2, 0}, {CubeFaceB, 2, 2}, {CubeFaceL, 2, 0}}, // DBL
	{{CubeFaceD, 2, 2}, {CubeFaceR, 2, 2}, {CubeFaceB, 2, 0}}, // DBR
	{{CubeFaceD, 0, 2}, {CubeFaceF, 2, 2}, {CubeFaceR, 2, 0}}, // DFR
	{{CubeFaceD, 0, 0}, {CubeFaceL, 2, 2}, {CubeFaceF, 2, 0}}, // DFL
}

// edgeFacelets lists the two stickers of every edge slot. The reference
// sticker (U/D, or F/B for middle-layer edges) comes first.
var edgeFacelets = [NumEdges][2]Facelet{
	{{CubeFaceB, 1, 2}, {CubeFaceL, 1, 0}}, // BL
	{{CubeFaceB, 1, 0}, {CubeFaceR, 1, 2}}, // BR
	{{CubeFaceF, 1, 2}, {CubeFaceR, 1, 0}}, // FR
	{{CubeFaceF, 1, 0}, {CubeFaceL, 1, 2}}, // FL
	{{CubeFaceU, 0, 1}, {CubeFaceB, 0, 1}}, // UB
	{{CubeFaceU, 1, 2}, {CubeFaceR, 0, 1}}, // UR
	{{CubeFaceU, 2, 1}, {CubeFaceF, 0, 1}}, // UF
	{{CubeFaceU, 1, 0}, {CubeFaceL, 0, 1}}, // UL
	{{CubeFaceD, 2, 1}, {CubeFaceB, 2, 1}}, // DB
	{{CubeFaceD, 1, 2}, {CubeFaceR, 2, 1}}, // DR
	{{CubeFaceD, 0, 1}, {CubeFaceF, 2, 1}}, // DF
	{{CubeFaceD, 1, 0}, {CubeFaceL, 2, 1}}, // DL
}

// Home colors of every cubie, read off the solved grid.
var (
	cornerHome [NumCorners][3]Color
	edgeHome   [NumEdges][2]Color
)

func init() {
	solved := SolvedGrid()
	for i, slot := range cornerFacelets {
		for j, f := range slot {
			cornerHome[i][j] = solved.At(f)
		}
	}
	for i, slot := range edgeFacelets {
		for j, f := range slot {
			edgeHome[i][j] = solved.At(f)
		}
	}
}

// CornerFacelets returns the sticker positions of a corner slot.
func CornerFacelets(slot int) [3]Facelet {
	return cornerFacelets[slot]
}

// EdgeFacelets returns the sticker positions of an edge slot.
func EdgeFacelets(slot int) [2]Facelet {
	return edgeFacelets[slot]
}

// SolvedGrid returns the grid of a solved cube: every face uniformly its
// canonical color.
func SolvedGrid() Grid {
	var g Grid
	for face := CubeFace(0); face < NumFaces; face++ {
		color := CanonicalPalette[face]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				g[face][row][col] = color
			}
		}
	}
	return g
}

// At returns the color of one sticker.
func (g Grid) At(f Facelet) Color {
	return g[f.Face][f.Row][f.Col]
}

func (g *Grid) set(f Facelet, c Color) {
	g[f.Face][f.Row][f.Col] = c
}

// Project maps a state to the stickers a physical cube in that state shows.
//
// The cubie in corner slot p is CP[p]; its home colors are rotated by
// CO[p] so that sticker i shows home[(i - CO[p]) mod 3]. The cubie in edge
// slot p is EP[p]; its two home colors are swapped when EO[p] is odd.
// Centers never move. Project accepts any State: a slot naming a cubie
// outside the valid range is skipped and its stickers fall back to the
// solved colors.
func Project(s State) Grid {
	home := SolvedGrid()
	var g Grid
	var written [NumFaces][3][3]bool
	place := func(f Facelet, c Color) {
		g.set(f, c)
		written[f.Face][f.Row][f.Col] = true
	}

	for p, slot := range cornerFacelets {
		cubie := s.CP[p]
		if cubie < 0 || cubie >= NumCorners {
			continue
		}
		twist := mod(s.CO[p], 3)
		colors := cornerHome[cubie]
		for i, f := range slot {
			place(f, colors[mod(i-twist, 3)])
		}
	}

	for p, slot := range edgeFacelets {
		cubie := s.EP[p]
		if cubie < 0 || cubie >= NumEdges {
			continue
		}
		colors := edgeHome[cubie]
		if mod(s.EO[p], 2) == 1 {
			colors[0], colors[1] = colors[1], colors[0]
		}
		for i, f := range slot {
			place(f, colors[i])
		}
	}

	for face := CubeFace(0); face < NumFaces; face++ {
		place(Facelet{face, 1, 1}, CanonicalPalette[face])
	}

	for face := range g {
		for row := range g[face] {
			for col := range g[face][row] {
				if !written[face][row][col] {
					g[face][row][col] = home[face][row][col]
				}
			}
		}
	}
	return g
}

// ProjectVectors is Project for untyped input. The vectors must have
// lengths 8, 8, 12 and 12; anything else fails with ErrMalformedState
// before any sticker is placed.
func ProjectVectors(cp, co, ep, eo []int) (Grid, error) {
	s, err := NewState(cp, co, ep, eo)
	if err != nil {
		return Grid{}, fmt.Errorf("project: %w", err)
	}
	return Project(s), nil
}

// mod returns x mod m in the range [0, m).
func mod(x, m int) int {
	return ((x % m) + m) % m
}

// IsSolved returns true if every face is uniformly its center color.
func (g Grid) IsSolved() bool {
	for face := range g {
		center := g[face][1][1]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if g[face][row][col] != center {
					return false
				}
			}
		}
	}
	return true
}

// String returns a text representation of the grid as an unfolded net.
func (g Grid) String() string {
	var b strings.Builder

	writeRow := func(face CubeFace, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(g[face][row][col].String())
			b.WriteString(" ")
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(CubeFaceU, row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(CubeFaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}
