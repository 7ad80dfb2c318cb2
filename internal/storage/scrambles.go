package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubestate"
)

// timeFormat has a fixed width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ErrStateMismatch is returned when a scramble's moves, applied to its
// base, do not produce the state being stored.
var ErrStateMismatch = errors.New("storage: moves do not produce state")

// Scramble represents an applied scramble in the database. Notation applied
// to Base gives State. BaseID is empty and Base is cubestate.Solved for
// scrambles that started from a solved cube.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	BaseID     string
	Base       cubestate.State
	Notation   string
	MoveCount  int
	State      cubestate.State
	Solved     bool
	Phase      string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db      *DB
	catalog *cubestate.Catalog
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db, catalog: cubestate.NewCatalog()}
}

// Create stores a scramble applied to a solved cube. See CreateFrom.
func (r *ScrambleRepository) Create(notation string, state cubestate.State) (string, error) {
	return r.CreateFrom(nil, notation, state)
}

// CreateFrom stores a scramble that was applied on top of base (nil for a
// solved cube), its moves and the state it produced, and returns the new
// scramble ID. The moves are replayed first; if they do not turn base into
// state nothing is stored and ErrStateMismatch is returned.
func (r *ScrambleRepository) CreateFrom(base *Scramble, notation string, state cubestate.State) (string, error) {
	moves, err := cubestate.ParseMoves(notation)
	if err != nil {
		return "", fmt.Errorf("failed to parse scramble: %w", err)
	}

	start := cubestate.Solved
	var baseID, baseJSON sql.NullString
	if base != nil {
		start = base.State
		encoded, err := json.Marshal(base.State)
		if err != nil {
			return "", fmt.Errorf("failed to encode base state: %w", err)
		}
		baseID = sql.NullString{String: base.ScrambleID, Valid: true}
		baseJSON = sql.NullString{String: string(encoded), Valid: true}
	}

	replayed, err := r.catalog.ApplyMoves(start, moves)
	if err != nil {
		return "", fmt.Errorf("failed to replay scramble: %w", err)
	}
	if replayed != state {
		return "", fmt.Errorf("%w: %q", ErrStateMismatch, cubestate.FormatMoves(moves))
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()
	phase := cubestate.Project(state).DetectPhase()

	err = r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, created_at, base_scramble_id, base_state_json,
				notation, move_count, state_json, solved, phase)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(timeFormat), baseID, baseJSON, cubestate.FormatMoves(moves), len(moves),
			string(stateJSON), state.IsSolved(), phase.String())
		if err != nil {
			return fmt.Errorf("failed to create scramble: %w", err)
		}

		return insertMoves(tx, id, moves)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

const scrambleColumns = `scramble_id, created_at, base_scramble_id, base_state_json,
	notation, move_count, state_json, solved, phase`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var createdAtStr, stateJSON string
	var baseID, baseJSON sql.NullString

	if err := row.Scan(&s.ScrambleID, &createdAtStr, &baseID, &baseJSON,
		&s.Notation, &s.MoveCount, &stateJSON, &s.Solved, &s.Phase); err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
	if err := json.Unmarshal([]byte(stateJSON), &s.State); err != nil {
		return nil, fmt.Errorf("failed to decode state of %s: %w", s.ScrambleID, err)
	}

	s.BaseID = baseID.String
	s.Base = cubestate.Solved
	if baseJSON.Valid {
		if err := json.Unmarshal([]byte(baseJSON.String), &s.Base); err != nil {
			return nil, fmt.Errorf("failed to decode base state of %s: %w", s.ScrambleID, err)
		}
	}

	return &s, nil
}

// Get retrieves a scramble by ID. It returns nil if no scramble matches.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`SELECT `+scrambleColumns+` FROM scrambles WHERE scramble_id = ?`, scrambleID)

	s, err := scanScramble(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	return s, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	list, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	return scrambles, rows.Err()
}

// Delete deletes a scramble and its moves (cascading).
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}

// Count returns the number of stored scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}
