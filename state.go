package cubestate

import (
	"fmt"
	"strings"
)

const (
	// NumCorners is the number of corner slots (and corner cubies).
	NumCorners = 8
	// NumEdges is the number of edge slots (and edge cubies).
	NumEdges = 12
)

// State is a cube configuration at cubie level.
//
// CP[i] is the corner cubie sitting in corner slot i and CO[i] its twist
// (0, 1 or 2). EP[i] is the edge cubie in edge slot i and EO[i] its flip
// (0 or 1). Corner slots are numbered UBL, UBR, UFR, UFL, DBL, DBR, DFR, DFL;
// edge slots BL, BR, FR, FL, UB, UR, UF, UL, DB, DR, DF, DL.
//
// State is a value type: every operation returns a new State and never
// modifies its receiver, so states can be shared freely.
//
// A move is represented by the same type. It holds what a single face turn
// does to a solved cube and is applied with Compose.
type State struct {
	CP [NumCorners]int `json:"cp" yaml:"cp"`
	CO [NumCorners]int `json:"co" yaml:"co"`
	EP [NumEdges]int   `json:"ep" yaml:"ep"`
	EO [NumEdges]int   `json:"eo" yaml:"eo"`
}

// Solved is the solved (identity) state.
var Solved = State{
	CP: [NumCorners]int{0, 1, 2, 3, 4, 5, 6, 7},
	EP: [NumEdges]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// NewState builds a State from literal vectors.
// Only the lengths are checked (8, 8, 12, 12). Use Validate to check
// the values themselves.
func NewState(cp, co, ep, eo []int) (State, error) {
	var s State
	if err := checkLen("cp", cp, NumCorners); err != nil {
		return s, err
	}
	if err := checkLen("co", co, NumCorners); err != nil {
		return s, err
	}
	if err := checkLen("ep", ep, NumEdges); err != nil {
		return s, err
	}
	if err := checkLen("eo", eo, NumEdges); err != nil {
		return s, err
	}
	copy(s.CP[:], cp)
	copy(s.CO[:], co)
	copy(s.EP[:], ep)
	copy(s.EO[:], eo)
	return s, nil
}

func checkLen(name string, v []int, want int) error {
	if len(v) != want {
		return fmt.Errorf("%w: %s has length %d, want %d", ErrMalformedState, name, len(v), want)
	}
	return nil
}

// Compose applies move m to state s and returns the resulting state.
//
// For every slot i the move's permutation names the source slot whose
// cubie is pulled into i, and the move's orientation is added to it:
//
//	cp'[i] = cp[m.cp[i]]    co'[i] = (co[m.cp[i]] + m.co[i]) mod 3
//	ep'[i] = ep[m.ep[i]]    eo'[i] = (eo[m.ep[i]] + m.eo[i]) mod 2
//
// Compose is not commutative. The vectors of m are not validated: a move
// with repeated indices yields a non-permutation, and an index outside the
// slot range panics.
func Compose(s, m State) State {
	var out State
	permute(out.CP[:], out.CO[:], s.CP[:], s.CO[:], m.CP[:], m.CO[:], 3)
	permute(out.EP[:], out.EO[:], s.EP[:], s.EO[:], m.EP[:], m.EO[:], 2)
	return out
}

// permute is the shared corner/edge composition step. perm selects the
// source slot for every destination slot; ori is added modulo mod.
func permute(dstPerm, dstOri, srcPerm, srcOri, perm, ori []int, mod int) {
	for i, p := range perm {
		dstPerm[i] = srcPerm[p]
		dstOri[i] = (srcOri[p] + ori[i]) % mod
	}
}

// Apply returns Compose(s, m).
func (s State) Apply(m State) State {
	return Compose(s, m)
}

// IsSolved returns true if s is the solved state.
func (s State) IsSolved() bool {
	return s == Solved
}

// Validate checks that CP and EP are permutations and that every
// orientation is in range. Composition never calls it.
func (s State) Validate() error {
	if err := validateOrbit("corner", s.CP[:], s.CO[:], 3); err != nil {
		return err
	}
	return validateOrbit("edge", s.EP[:], s.EO[:], 2)
}

func validateOrbit(kind string, perm, ori []int, mod int) error {
	seen := make([]bool, len(perm))
	for i, p := range perm {
		if p < 0 || p >= len(perm) {
			return fmt.Errorf("%w: %s slot %d holds cubie %d", ErrMalformedState, kind, i, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: %s cubie %d appears twice", ErrMalformedState, kind, p)
		}
		seen[p] = true
		if ori[i] < 0 || ori[i] >= mod {
			return fmt.Errorf("%w: %s slot %d has orientation %d", ErrMalformedState, kind, i, ori[i])
		}
	}
	return nil
}

// IsLegal reports whether s can be reached from the solved state by face
// turns: twists sum to 0 mod 3, flips sum to 0 mod 2 and the corner and
// edge permutations have equal parity.
func (s State) IsLegal() bool {
	if s.Validate() != nil {
		return false
	}
	if sum(s.CO[:])%3 != 0 || sum(s.EO[:])%2 != 0 {
		return false
	}
	return parity(s.CP[:]) == parity(s.EP[:])
}

func sum(v []int) int {
	total := 0
	for _, x := range v {
		total += x
	}
	return total
}

// parity returns 0 for an even permutation and 1 for an odd one.
// perm must be a valid permutation.
func parity(perm []int) int {
	visited := make([]bool, len(perm))
	cycles := 0
	for i := range perm {
		if visited[i] {
			continue
		}
		cycles++
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
		}
	}
	return (len(perm) - cycles) % 2
}

// String returns the four vectors on one line.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cp=%v co=%v ep=%v eo=%v", s.CP, s.CO, s.EP, s.EO)
	return b.String()
}
