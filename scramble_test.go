package cubestate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrambleEmptyReturnsBase(t *testing.T) {
	c := NewCatalog()
	for name, base := range testStates(t, c) {
		for _, notation := range []string{"", " ", "\t\n  "} {
			got, err := Scramble(notation, WithBase(base), WithCatalog(c))
			require.NoError(t, err)
			assert.Equal(t, base, got, "blank %q from %q", notation, name)
		}
	}
}

func TestScrambleRegression(t *testing.T) {
	tests := []struct {
		notation string
		want     State
	}{
		{
			notation: "R U R' U'",
			want: State{
				CP: [8]int{1, 0, 6, 3, 4, 5, 2, 7},
				CO: [8]int{0, 2, 2, 0, 0, 0, 2, 0},
				EP: [12]int{0, 1, 4, 3, 5, 2, 6, 7, 8, 9, 10, 11},
			},
		},
		{
			notation: "R U F' L2 D B' R2 U' F D2",
			want: State{
				CP: [8]int{3, 0, 1, 2, 4, 6, 7, 5},
				CO: [8]int{0, 1, 1, 2, 2, 0, 1, 2},
				EP: [12]int{1, 10, 11, 6, 3, 9, 0, 2, 7, 8, 5, 4},
				EO: [12]int{1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 0},
			},
		},
		{
			notation: "F2 B L' D",
			want: State{
				CP: [8]int{6, 5, 7, 2, 4, 3, 0, 1},
				CO: [8]int{2, 2, 0, 1, 1, 0, 1, 2},
				EP: [12]int{7, 8, 3, 11, 1, 5, 10, 2, 9, 6, 4, 0},
				EO: [12]int{0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := Scramble(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsLegal())
		})
	}
}

func TestScrambleThenInverseSolves(t *testing.T) {
	c := NewCatalog()
	s, err := Scramble("R U R' U'", WithCatalog(c))
	require.NoError(t, err)

	s, err = Scramble("U R U' R'", WithBase(s), WithCatalog(c))
	require.NoError(t, err)
	assert.True(t, s.IsSolved())
}

func TestScrambleSexyMoveHasOrderSix(t *testing.T) {
	six := strings.Repeat("R U R' U' ", 6)
	s, err := Scramble(six)
	require.NoError(t, err)
	assert.True(t, s.IsSolved())

	five := strings.Repeat("R U R' U' ", 5)
	s, err = Scramble(five)
	require.NoError(t, err)
	assert.False(t, s.IsSolved())
}

func TestScrambleInvertedSequence(t *testing.T) {
	c := NewCatalog()
	moves, err := ParseMoves("R U F' L2 D B' R2 U' F D2 B L'")
	require.NoError(t, err)

	s, err := Scramble(FormatMoves(moves), WithCatalog(c))
	require.NoError(t, err)
	s, err = Scramble(FormatMoves(Invert(moves)), WithBase(s), WithCatalog(c))
	require.NoError(t, err)
	assert.True(t, s.IsSolved())
}

func TestScrambleWhitespace(t *testing.T) {
	want, err := Scramble("R U R' U'")
	require.NoError(t, err)

	got, err := Scramble("  R\tU\n R'   U' ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScrambleUnknownToken(t *testing.T) {
	tests := []struct {
		notation string
		index    string
	}{
		{"R U X", "token 2"},
		{"r", "token 0"},
		{"R U R3", "token 2"},
		{"R,U", "token 0"},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := Scramble(tt.notation)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownMove)
			assert.Contains(t, err.Error(), tt.index)
			assert.Equal(t, State{}, got)
		})
	}
}

func TestScrambleValidation(t *testing.T) {
	bad := Solved
	bad.CP[0] = 1

	_, err := Scramble("R", WithBase(bad), WithValidation(true))
	assert.ErrorIs(t, err, ErrMalformedState)

	// Without validation the malformed base is composed as is.
	got, err := Scramble("U", WithBase(bad))
	require.NoError(t, err)
	assert.Error(t, got.Validate())
}
