package cubestate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStates returns a few legal, non-solved states plus the solved one.
func testStates(t *testing.T, c *Catalog) map[string]State {
	t.Helper()
	states := map[string]State{"solved": Solved}
	for _, scramble := range []string{
		"R U R' U'",
		"F2 B L' D",
		"R U F' L2 D B' R2 U' F D2",
	} {
		s, err := Scramble(scramble, WithCatalog(c))
		require.NoError(t, err)
		states[scramble] = s
	}
	return states
}

func TestUMoveLiteral(t *testing.T) {
	c := NewCatalog()
	s, err := c.Apply(Solved, "U")
	require.NoError(t, err)

	assert.Equal(t, [8]int{3, 0, 1, 2, 4, 5, 6, 7}, s.CP)
	assert.Equal(t, [12]int{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11}, s.EP)
	assert.Equal(t, [8]int{}, s.CO)
	assert.Equal(t, [12]int{}, s.EO)
}

func TestSolvedIsIdentity(t *testing.T) {
	c := NewCatalog()
	for name, s := range testStates(t, c) {
		assert.Equal(t, s, Compose(s, Solved), "%s composed with identity", name)
	}
	assert.True(t, Solved.IsSolved())
}

func TestFourQuarterTurnsReturnToStart(t *testing.T) {
	c := NewCatalog()
	for name, s := range testStates(t, c) {
		for _, g := range generators {
			got := s
			for i := 0; i < 4; i++ {
				got = Compose(got, g.delta)
			}
			if got != s {
				t.Errorf("%s x 4 from %q should return to start, got %v", g.face, name, got)
			}
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	c := NewCatalog()
	for name, s := range testStates(t, c) {
		for _, face := range Faces {
			x := string(face)
			for _, pair := range [][2]string{{x, x + "'"}, {x + "'", x}, {x + "2", x + "2"}} {
				got, err := c.Apply(s, pair[0])
				require.NoError(t, err)
				got, err = c.Apply(got, pair[1])
				require.NoError(t, err)
				assert.Equal(t, s, got, "%s then %s from %q", pair[0], pair[1], name)
			}
		}
	}
}

func TestSequentialApplicationEqualsFold(t *testing.T) {
	c := NewCatalog()
	seq := []string{"R", "U2", "F'", "L", "B2", "D'"}

	for name, s := range testStates(t, c) {
		sequential := s
		for _, m := range seq {
			var err error
			sequential, err = c.Apply(sequential, m)
			require.NoError(t, err)
		}

		folded := s
		for _, m := range seq {
			delta, err := c.Lookup(m)
			require.NoError(t, err)
			folded = folded.Apply(delta)
		}

		assert.Equal(t, sequential, folded, "from %q", name)
	}
}

func TestComposeIsNotCommutative(t *testing.T) {
	c := NewCatalog()
	r, _ := c.Lookup("R")
	u, _ := c.Lookup("U")
	assert.NotEqual(t, Compose(r, u), Compose(u, r))
}

func TestComposeDoesNotModifyInputs(t *testing.T) {
	c := NewCatalog()
	r, _ := c.Lookup("R")
	before := r
	s := Solved
	_ = Compose(s, r)
	assert.Equal(t, before, r)
	assert.Equal(t, Solved, s)
}

func TestComposeMalformedMoveIsUnchecked(t *testing.T) {
	// Repeated indices are accepted and produce a non-permutation.
	bad := Solved
	bad.CP[1] = 0
	got := Compose(Solved, bad)
	assert.Equal(t, 0, got.CP[0])
	assert.Equal(t, 0, got.CP[1])
	assert.ErrorIs(t, got.Validate(), ErrMalformedState)

	// Indices outside the slot range are a precondition violation.
	outOfRange := Solved
	outOfRange.EP[3] = 12
	assert.Panics(t, func() { Compose(Solved, outOfRange) })
}

func TestNewState(t *testing.T) {
	s, err := NewState(
		[]int{0, 2, 6, 3, 4, 1, 5, 7},
		[]int{0, 1, 2, 0, 0, 2, 1, 0},
		[]int{0, 5, 9, 3, 4, 2, 6, 7, 8, 1, 10, 11},
		make([]int, 12),
	)
	require.NoError(t, err)

	r, _ := NewCatalog().Lookup("R")
	assert.Equal(t, r, s)
}

func TestNewStateRejectsWrongLengths(t *testing.T) {
	tests := []struct {
		name           string
		cp, co, ep, eo []int
	}{
		{"short cp", make([]int, 7), make([]int, 8), make([]int, 12), make([]int, 12)},
		{"long co", make([]int, 8), make([]int, 9), make([]int, 12), make([]int, 12)},
		{"short ep", make([]int, 8), make([]int, 8), make([]int, 8), make([]int, 12)},
		{"nil eo", make([]int, 8), make([]int, 8), make([]int, 12), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewState(tt.cp, tt.co, tt.ep, tt.eo)
			assert.ErrorIs(t, err, ErrMalformedState)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *State)
		valid  bool
	}{
		{"solved", func(s *State) {}, true},
		{"twisted corner", func(s *State) { s.CO[0] = 2 }, true},
		{"duplicate corner", func(s *State) { s.CP[0] = 1 }, false},
		{"corner out of range", func(s *State) { s.CP[7] = 8 }, false},
		{"negative edge", func(s *State) { s.EP[0] = -1 }, false},
		{"duplicate edge", func(s *State) { s.EP[11] = 0 }, false},
		{"twist out of range", func(s *State) { s.CO[3] = 3 }, false},
		{"flip out of range", func(s *State) { s.EO[3] = 2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Solved
			tt.mutate(&s)
			err := s.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, ErrMalformedState), "got %v", err)
			}
		})
	}
}

func TestIsLegal(t *testing.T) {
	assert.True(t, Solved.IsLegal())

	twisted := Solved
	twisted.CO[0] = 1
	assert.False(t, twisted.IsLegal(), "single twisted corner")

	flipped := Solved
	flipped.EO[5] = 1
	assert.False(t, flipped.IsLegal(), "single flipped edge")

	swapped := Solved
	swapped.EP[0], swapped.EP[1] = swapped.EP[1], swapped.EP[0]
	assert.False(t, swapped.IsLegal(), "edge swap alone has odd parity")

	swapped.CP[0], swapped.CP[1] = swapped.CP[1], swapped.CP[0]
	assert.True(t, swapped.IsLegal(), "corner and edge swap together")
}

func TestRandomWalkKeepsOrientationInvariants(t *testing.T) {
	c := NewCatalog()
	names := c.Names()
	rng := rand.New(rand.NewSource(42))

	s := Solved
	for step := 0; step < 1000; step++ {
		name := names[rng.Intn(len(names))]
		var err error
		s, err = c.Apply(s, name)
		require.NoError(t, err)

		if sum(s.CO[:])%3 != 0 {
			t.Fatalf("step %d (%s): corner twist sum %d", step, name, sum(s.CO[:]))
		}
		if sum(s.EO[:])%2 != 0 {
			t.Fatalf("step %d (%s): edge flip sum %d", step, name, sum(s.EO[:]))
		}
		if !s.IsLegal() {
			t.Fatalf("step %d (%s): state not legal: %v", step, name, s)
		}
	}
}

func TestParity(t *testing.T) {
	assert.Equal(t, 0, parity([]int{0, 1, 2, 3}))
	assert.Equal(t, 1, parity([]int{1, 0, 2, 3}))
	assert.Equal(t, 1, parity([]int{3, 0, 1, 2}))
	assert.Equal(t, 0, parity([]int{1, 2, 0, 3}))
}

func TestStateString(t *testing.T) {
	assert.Equal(t,
		"cp=[0 1 2 3 4 5 6 7] co=[0 0 0 0 0 0 0 0] ep=[0 1 2 3 4 5 6 7 8 9 10 11] eo=[0 0 0 0 0 0 0 0 0 0 0 0]",
		Solved.String())
}
