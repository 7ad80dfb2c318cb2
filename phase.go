package cubestate

// Phase represents the current solving phase in the layer-by-layer method.
// Standard orientation: White on top (U), Green in front (F).
// Phases progress from Scrambled (0) to Solved (7), allowing comparison
// with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates the cube is in a scrambled state.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the white cross is complete.
	// The 4 white edge pieces are on the U face with their adjacent
	// colors matching the side centers.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the first layer (white face) is complete.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the second (middle) layer is complete.
	PhaseSecondLayer

	// PhaseYellowCross indicates the yellow cross is formed on the D face.
	PhaseYellowCross

	// PhaseYellowCorners indicates the yellow corners are positioned
	// (may be mis-oriented).
	PhaseYellowCorners

	// PhaseYellowOriented indicates the yellow corners are oriented.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer (F2L)"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

var sideFaces = []CubeFace{CubeFaceF, CubeFaceR, CubeFaceB, CubeFaceL}

// IsWhiteCrossComplete checks the 4 U edges are white and each edge's
// side sticker matches its center.
func (g Grid) IsWhiteCrossComplete() bool {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		if g[CubeFaceU][rc[0]][rc[1]] != White {
			return false
		}
	}

	// Row 0 of every side face touches U.
	for _, face := range sideFaces {
		if g[face][0][1] != g[face][1][1] {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks the whole U layer: white cross plus the
// four white corners.
func (g Grid) IsFirstLayerComplete() bool {
	if !g.IsWhiteCrossComplete() {
		return false
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if g[CubeFaceU][row][col] != White {
				return false
			}
		}
	}

	for _, face := range sideFaces {
		center := g[face][1][1]
		if g[face][0][0] != center || g[face][0][2] != center {
			return false
		}
	}
	return true
}

// IsSecondLayerComplete checks the middle layer edges.
func (g Grid) IsSecondLayerComplete() bool {
	if !g.IsFirstLayerComplete() {
		return false
	}

	for _, face := range sideFaces {
		center := g[face][1][1]
		if g[face][1][0] != center || g[face][1][2] != center {
			return false
		}
	}
	return true
}

// IsYellowCrossComplete checks the 4 D edges show yellow.
// Their side colors are not checked.
func (g Grid) IsYellowCrossComplete() bool {
	if !g.IsSecondLayerComplete() {
		return false
	}

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		if g[CubeFaceD][rc[0]][rc[1]] != Yellow {
			return false
		}
	}
	return true
}

// AreYellowCornersPositioned checks every D corner slot holds its own
// cubie, ignoring orientation.
func (g Grid) AreYellowCornersPositioned() bool {
	if !g.IsYellowCrossComplete() {
		return false
	}

	for slot := 4; slot < NumCorners; slot++ {
		var actual [3]Color
		for i, f := range cornerFacelets[slot] {
			actual[i] = g.At(f)
		}
		if !sameColors(actual[:], cornerHome[slot][:]) {
			return false
		}
	}
	return true
}

// AreYellowCornersOriented checks the D face is all yellow and the bottom
// corners match their side centers.
func (g Grid) AreYellowCornersOriented() bool {
	if !g.AreYellowCornersPositioned() {
		return false
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if g[CubeFaceD][row][col] != Yellow {
				return false
			}
		}
	}

	for _, face := range sideFaces {
		center := g[face][1][1]
		if g[face][2][0] != center || g[face][2][2] != center {
			return false
		}
	}
	return true
}

// sameColors checks if two color slices contain the same colors (in any order).
func sameColors(a, b []Color) bool {
	if len(a) != len(b) {
		return false
	}

	count := make(map[Color]int)
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		count[c]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

// DetectPhase returns the highest completed phase of the grid.
func (g Grid) DetectPhase() Phase {
	switch {
	case g.IsSolved():
		return PhaseSolved
	case g.AreYellowCornersOriented():
		return PhaseYellowOriented // edges of the last layer still off
	case g.AreYellowCornersPositioned():
		return PhaseYellowCorners
	case g.IsYellowCrossComplete():
		return PhaseYellowCross
	case g.IsSecondLayerComplete():
		return PhaseSecondLayer
	case g.IsFirstLayerComplete():
		return PhaseFirstLayer
	case g.IsWhiteCrossComplete():
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}

// Progress represents which phases have been completed.
type Progress struct {
	WhiteCross     bool
	FirstLayer     bool
	SecondLayer    bool
	YellowCross    bool
	YellowCorners  bool
	YellowOriented bool
	Solved         bool
}

// Progress returns the current progress through all phases.
func (g Grid) Progress() Progress {
	return Progress{
		WhiteCross:     g.IsWhiteCrossComplete(),
		FirstLayer:     g.IsFirstLayerComplete(),
		SecondLayer:    g.IsSecondLayerComplete(),
		YellowCross:    g.IsYellowCrossComplete(),
		YellowCorners:  g.AreYellowCornersPositioned(),
		YellowOriented: g.AreYellowCornersOriented(),
		Solved:         g.IsSolved(),
	}
}
