package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("storage: not found")

// timeFormat is fixed-width so that stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Solution is one recorded solver run.
type Solution struct {
	SolutionID string
	CreatedAt  time.Time
	Scramble   string
	State      string // Serialized cube.State
	Moves      string // Space-separated solution, empty when not found
	Found      bool
	MaxDepth   int
	Depth      int
	Nodes      int
	DurationMs int64
}

// SolutionRepository provides CRUD operations for solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create stores a solution and returns it with its ID and creation time set.
func (r *SolutionRepository) Create(s Solution) (Solution, error) {
	s.SolutionID = uuid.New().String()
	s.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solutions (solution_id, created_at, scramble, state, solution, found, max_depth, depth, nodes, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.SolutionID, s.CreatedAt.Format(timeFormat), s.Scramble, s.State, s.Moves,
		s.Found, s.MaxDepth, s.Depth, s.Nodes, s.DurationMs)

	if err != nil {
		return Solution{}, fmt.Errorf("failed to create solution: %w", err)
	}

	return s, nil
}

// Get retrieves a solution by ID.
func (r *SolutionRepository) Get(solutionID string) (*Solution, error) {
	row := r.db.QueryRow(`
		SELECT solution_id, created_at, scramble, state, solution, found, max_depth, depth, nodes, duration_ms
		FROM solutions
		WHERE solution_id = ?
	`, solutionID)

	s, err := scanSolution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("solution %s: %w", solutionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	return s, nil
}

// List retrieves the most recent solutions, newest first.
func (r *SolutionRepository) List(limit int) ([]Solution, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, created_at, scramble, state, solution, found, max_depth, depth, nodes, duration_ms
		FROM solutions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var solutions []Solution
	for rows.Next() {
		s, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		solutions = append(solutions, *s)
	}

	return solutions, rows.Err()
}

// Delete removes a solution.
func (r *SolutionRepository) Delete(solutionID string) error {
	result, err := r.db.Exec("DELETE FROM solutions WHERE solution_id = ?", solutionID)
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("solution %s: %w", solutionID, ErrNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolution(sc scanner) (*Solution, error) {
	var s Solution
	var createdAt string
	err := sc.Scan(&s.SolutionID, &createdAt, &s.Scramble, &s.State, &s.Moves,
		&s.Found, &s.MaxDepth, &s.Depth, &s.Nodes, &s.DurationMs)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, err = time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &s, nil
}
