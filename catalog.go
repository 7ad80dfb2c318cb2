package cubestate

import "fmt"

// generators holds one clockwise quarter turn per face, in catalog order.
var generators = []struct {
	face  Face
	delta State
}{
	{FaceU, State{
		CP: [8]int{3, 0, 1, 2, 4, 5, 6, 7},
		EP: [12]int{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11},
	}},
	{FaceD, State{
		CP: [8]int{0, 1, 2, 3, 5, 6, 7, 4},
		EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
	}},
	{FaceL, State{
		CP: [8]int{4, 1, 2, 0, 7, 5, 6, 3},
		CO: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]int{11, 1, 2, 7, 4, 5, 6, 0, 8, 9, 10, 3},
	}},
	{FaceR, State{
		CP: [8]int{0, 2, 6, 3, 4, 1, 5, 7},
		CO: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]int{0, 5, 9, 3, 4, 2, 6, 7, 8, 1, 10, 11},
	}},
	{FaceF, State{
		CP: [8]int{0, 1, 3, 7, 4, 5, 2, 6},
		CO: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]int{0, 1, 6, 10, 4, 5, 3, 7, 8, 9, 2, 11},
		EO: [12]int{0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0},
	}},
	{FaceB, State{
		CP: [8]int{1, 5, 2, 3, 0, 4, 6, 7},
		CO: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]int{4, 8, 2, 3, 1, 5, 6, 7, 0, 9, 10, 11},
		EO: [12]int{1, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	}},
}

// Catalog maps the 18 single-move names to their cubie-level deltas.
//
// Build one with NewCatalog at startup and pass it around; it is never
// modified after construction and is safe for concurrent use.
type Catalog struct {
	deltas map[string]State
	names  []string
}

// NewCatalog derives the 18 moves from the six quarter-turn generators.
// For every face X, X2 is X composed with itself and X' is X composed
// three times.
func NewCatalog() *Catalog {
	c := &Catalog{
		deltas: make(map[string]State, 3*len(generators)),
		names:  make([]string, 0, 3*len(generators)),
	}

	for _, g := range generators {
		quarter := g.delta
		half := Compose(quarter, quarter)
		threeQuarter := Compose(half, quarter)

		for _, entry := range []struct {
			move  Move
			delta State
		}{
			{Move{Face: g.face, Turn: CW}, quarter},
			{Move{Face: g.face, Turn: Double}, half},
			{Move{Face: g.face, Turn: CCW}, threeQuarter},
		} {
			name := entry.move.Notation()
			c.deltas[name] = entry.delta
			c.names = append(c.names, name)
		}
	}

	return c
}

// Lookup returns the delta for a move name such as "R", "U2" or "F'".
func (c *Catalog) Lookup(name string) (State, error) {
	delta, ok := c.deltas[name]
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return delta, nil
}

// Names returns the move names in catalog order:
// U U2 U' D D2 D' L L2 L' R R2 R' F F2 F' B B2 B'.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of moves in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Apply applies a single named move to s.
func (c *Catalog) Apply(s State, name string) (State, error) {
	delta, err := c.Lookup(name)
	if err != nil {
		return s, err
	}
	return Compose(s, delta), nil
}

// ApplyMoves applies moves to s in order. On error the returned state is s
// unchanged.
func (c *Catalog) ApplyMoves(s State, moves []Move) (State, error) {
	out := s
	for i, m := range moves {
		delta, err := c.Lookup(m.Notation())
		if err != nil {
			return s, fmt.Errorf("move %d: %w", i, err)
		}
		out = Compose(out, delta)
	}
	return out, nil
}
