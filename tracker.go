package cubestate

import "errors"

// ErrNothingToUndo is returned by Tracker.Undo on an empty history.
var ErrNothingToUndo = errors.New("cubestate: nothing to undo")

// Tracker follows a cube through a sequence of moves.
// A Tracker is not safe for concurrent use.
type Tracker struct {
	catalog       *Catalog
	cfg           *config
	state         State
	moves         []Move
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(p Phase)
}

// NewTracker creates a tracker starting from the solved state, or from
// the state given with WithBase. A nil catalog falls back to the one given
// with WithCatalog, then to a freshly built one.
func NewTracker(catalog *Catalog, opts ...Option) *Tracker {
	cfg := applyOptions(opts)
	if catalog == nil {
		catalog = cfg.catalog
	}
	if catalog == nil {
		catalog = NewCatalog()
	}
	t := &Tracker{
		catalog: catalog,
		cfg:     cfg,
	}
	t.Reset()
	return t
}

// OnPhaseChange sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) OnPhaseChange(cb func(p Phase)) {
	t.phaseCallback = cb
}

// Reset returns the tracker to its base state and clears the history.
func (t *Tracker) Reset() {
	t.state = t.cfg.base
	t.moves = nil
	t.highestPhase = PhaseScrambled
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) error {
	next, err := t.catalog.Apply(t.state, m.Notation())
	if err != nil {
		return err
	}
	t.state = next
	if t.cfg.moveHistory {
		t.moves = append(t.moves, m)
	}
	t.checkPhaseTransition()
	return nil
}

// ApplyNotation parses and applies a move sequence. Nothing is applied if
// any token is invalid; the error matches both ErrInvalidNotation and
// ErrUnknownMove.
func (t *Tracker) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	if _, err := t.catalog.ApplyMoves(t.state, moves); err != nil {
		return err
	}
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverts the most recent move.
func (t *Tracker) Undo() error {
	if len(t.moves) == 0 {
		return ErrNothingToUndo
	}
	last := t.moves[len(t.moves)-1]
	next, err := t.catalog.Apply(t.state, last.Inverse().Notation())
	if err != nil {
		return err
	}
	t.state = next
	t.moves = t.moves[:len(t.moves)-1]
	return nil
}

// checkPhaseTransition fires the callback when a new highest phase is
// reached.
func (t *Tracker) checkPhaseTransition() {
	if !t.cfg.phaseDetection {
		return
	}
	current := t.CurrentPhase()
	if current > t.highestPhase {
		t.highestPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current)
		}
	}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Grid returns the current sticker layout.
func (t *Tracker) Grid() Grid {
	return Project(t.state)
}

// Moves returns a copy of the applied moves.
func (t *Tracker) Moves() []Move {
	moves := make([]Move, len(t.moves))
	copy(moves, t.moves)
	return moves
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// CurrentPhase returns the phase of the current state.
// This reflects the raw cube state and may go backwards.
func (t *Tracker) CurrentPhase() Phase {
	return t.Grid().DetectPhase()
}

// HighestPhase returns the highest phase reached since the last Reset.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}
