package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents one persisted solve record.
type Solve struct {
	SolveID       string
	StartedAt     time.Time
	EndedAt       *time.Time
	DurationMs    *int64
	ScrambleText  *string
	SolutionText  *string
	MoveCount     *int
	Phase1Moves   *int
	Phase2Moves   *int
	Notes         *string
}

// SolveRepository provides CRUD operations for solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records the start of a solve and returns its ID.
func (r *SolveRepository) Create(scramble, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, started_at, scramble_text, notes)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr, notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// End records the solution found for a solve (moves and phase lengths),
// marking it complete and computing its duration from Create's timestamp.
func (r *SolveRepository) End(solveID, solution string, moveCount, phase1Moves, phase2Moves int) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	if err := r.db.QueryRow("SELECT started_at FROM solves WHERE solve_id = ?", solveID).Scan(&startedAtStr); err != nil {
		return fmt.Errorf("failed to get solve start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}
	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE solves
		SET ended_at = ?, duration_ms = ?, solution_text = ?, move_count = ?, phase1_moves = ?, phase2_moves = ?
		WHERE solve_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, solution, moveCount, phase1Moves, phase2Moves, solveID)
	if err != nil {
		return fmt.Errorf("failed to end solve: %w", err)
	}

	return nil
}

func scanSolve(row interface {
	Scan(dest ...any) error
}) (*Solve, error) {
	var s Solve
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(
		&s.SolveID, &startedAtStr, &endedAtStr, &s.DurationMs,
		&s.ScrambleText, &s.SolutionText, &s.MoveCount,
		&s.Phase1Moves, &s.Phase2Moves, &s.Notes,
	)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	return &s, nil
}

const solveColumns = `solve_id, started_at, ended_at, duration_ms, scramble_text, solution_text, move_count, phase1_moves, phase2_moves, notes`

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID)
	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently started solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	var solveID string
	err := r.db.QueryRow(`SELECT solve_id FROM solves ORDER BY started_at DESC LIMIT 1`).Scan(&solveID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return r.Get(solveID)
}

// List retrieves the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`SELECT `+solveColumns+` FROM solves ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	return solves, rows.Err()
}

// Delete removes a solve record.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// GetMoveCount returns the recorded move count for a solve, or 0 if the
// solve hasn't completed yet.
func (r *SolveRepository) GetMoveCount(solveID string) (int, error) {
	var count sql.NullInt64
	err := r.db.QueryRow("SELECT move_count FROM solves WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get move count: %w", err)
	}
	return int(count.Int64), nil
}
