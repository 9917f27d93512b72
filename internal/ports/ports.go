package ports

import (
	"context"
	"time"

	"svw.info/hexcube/internal/domain"
)

// Stats captures performance characteristics of a search operation.
type Stats struct {
	Nodes      int
	Backtracks int
	Duration   time.Duration
}

// Solver fills cubes by backtracking search and can count completions.
type Solver interface {
	// Fill completes the given partial grid in place-order, returning the
	// solved grid. The seed drives candidate shuffling only; the scan
	// order for the next empty cell is fixed.
	Fill(ctx context.Context, grid domain.SolutionGrid, seed int64) (domain.SolutionGrid, Stats, error)
	// CountSolutions counts completions of the grid, stopping at limit.
	CountSolutions(ctx context.Context, grid domain.SolutionGrid, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs the full 1536-group constraint check.
type Validator interface {
	Validate(ctx context.Context, c *domain.Cube) (domain.CubeResult, error)
}

// Hinter returns the next forced cell, if any exists.
type Hinter interface {
	Hint(ctx context.Context, c *domain.Cube) (domain.Hint, bool, error)
}

// StateStore persists the single active game state under a fixed key.
// Clear is best-effort and never reports failure.
type StateStore interface {
	Save(ctx context.Context, doc *domain.SavedGameDoc) error
	Load(ctx context.Context) (*domain.SavedGameDoc, error)
	Clear(ctx context.Context)
}

// PuzzleStore persists pre-generated cached puzzles as documents.
type PuzzleStore interface {
	Save(ctx context.Context, doc *domain.CachedPuzzleDoc) error
	Load(ctx context.Context, id string) (*domain.CachedPuzzleDoc, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
