package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubestate"
)

// MoveRecord represents one move of a stored scramble.
type MoveRecord struct {
	MoveID     int64
	ScrambleID string
	MoveIndex  int
	Face       string
	Turn       int
	Notation   string
}

// MoveRepository reads the moves of stored scrambles.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

func insertMoves(tx *sql.Tx, scrambleID string, moves []cubestate.Move) error {
	for i, move := range moves {
		_, err := tx.Exec(`
			INSERT INTO scramble_moves (scramble_id, move_index, face, turn, notation)
			VALUES (?, ?, ?, ?, ?)
		`, scrambleID, i, string(move.Face), int(move.Turn), move.Notation())
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", i, err)
		}
	}
	return nil
}

// GetByScramble retrieves all moves for a scramble in order.
func (r *MoveRepository) GetByScramble(scrambleID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, scramble_id, move_index, face, turn, notation
		FROM scramble_moves
		WHERE scramble_id = ?
		ORDER BY move_index
	`, scrambleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.ScrambleID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a scramble.
func (r *MoveRepository) Count(scrambleID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM scramble_moves WHERE scramble_id = ?", scrambleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords to a cubestate.Move slice.
func ToMoves(records []MoveRecord) []cubestate.Move {
	moves := make([]cubestate.Move, len(records))
	for i, r := range records {
		moves[i] = cubestate.Move{
			Face: cubestate.Face(r.Face),
			Turn: cubestate.Turn(r.Turn),
		}
	}
	return moves
}
