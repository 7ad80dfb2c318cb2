package cubestate

import (
	"testing"
)

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseScrambled, "scrambled"},
		{PhaseWhiteCross, "white_cross"},
		{PhaseFirstLayer, "first_layer"},
		{PhaseSecondLayer, "second_layer"},
		{PhaseYellowCross, "yellow_cross"},
		{PhaseYellowCorners, "yellow_corners"},
		{PhaseYellowOriented, "yellow_oriented"},
		{PhaseSolved, "solved"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestPhaseOrdering(t *testing.T) {
	phases := []Phase{
		PhaseScrambled,
		PhaseWhiteCross,
		PhaseFirstLayer,
		PhaseSecondLayer,
		PhaseYellowCross,
		PhaseYellowCorners,
		PhaseYellowOriented,
		PhaseSolved,
	}

	for i := 1; i < len(phases); i++ {
		if phases[i] <= phases[i-1] {
			t.Errorf("%s should be greater than %s", phases[i], phases[i-1])
		}
	}
}

func TestDetectPhase(t *testing.T) {
	twistedTop := Solved
	twistedTop.CO[0] = 1
	twistedTop.CO[1] = 2

	twistedBottom := Solved
	twistedBottom.CO[4] = 1
	twistedBottom.CO[5] = 2

	cycledBottomEdges := Solved
	cycledBottomEdges.EP[8], cycledBottomEdges.EP[9], cycledBottomEdges.EP[10] = 9, 10, 8

	c := NewCatalog()
	mustScramble := func(notation string) State {
		s, err := Scramble(notation, WithCatalog(c))
		if err != nil {
			t.Fatalf("Scramble(%q): %v", notation, err)
		}
		return s
	}

	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"solved", Solved, PhaseSolved},
		{"R", mustScramble("R"), PhaseScrambled},
		{"long scramble", mustScramble("R U F' L2 D B' R2 U' F D2"), PhaseScrambled},
		{"twisted top corners", twistedTop, PhaseWhiteCross},
		{"D turn", mustScramble("D"), PhaseYellowCross},
		{"twisted bottom corners", twistedBottom, PhaseYellowCorners},
		{"cycled bottom edges", cycledBottomEdges, PhaseYellowOriented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Project(tt.state).DetectPhase(); got != tt.want {
				t.Errorf("DetectPhase() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	p := SolvedGrid().Progress()
	if !p.WhiteCross || !p.FirstLayer || !p.SecondLayer || !p.YellowCross ||
		!p.YellowCorners || !p.YellowOriented || !p.Solved {
		t.Errorf("solved grid should complete every phase: %+v", p)
	}

	s, err := Scramble("D")
	if err != nil {
		t.Fatal(err)
	}
	p = Project(s).Progress()
	if !p.YellowCross || p.YellowCorners || p.Solved {
		t.Errorf("unexpected progress after D: %+v", p)
	}
}

func TestSameColors(t *testing.T) {
	if !sameColors([]Color{White, Red, Green}, []Color{Green, White, Red}) {
		t.Error("permuted colors should match")
	}
	if sameColors([]Color{White, Red, Green}, []Color{White, Red, Blue}) {
		t.Error("different colors should not match")
	}
	if sameColors([]Color{White}, []Color{White, White}) {
		t.Error("different lengths should not match")
	}
}
