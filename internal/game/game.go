// Package game wraps a puzzle cube and its solution with the derived
// completion and correctness flags. All constraint logic is delegated to
// the validator; this package only tracks state and enforces the editing
// contract on given cells.
package game

import (
	"context"
	"errors"
	"fmt"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/ports"
)

var (
	// ErrGivenCell rejects edits to clue cells.
	ErrGivenCell = errors.New("game: cannot edit a given cell")
)

// Correctness is the tri-state result of the last validation run.
type Correctness int8

const (
	Unknown Correctness = iota
	Correct
	Incorrect
)

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	}
	return "unknown"
}

// Game is the mutable play state. Completion and correctness are derived
// values recomputed on demand, not invariants maintained on every edit.
type Game struct {
	Cube       *domain.Cube
	Solution   domain.SolutionGrid
	Difficulty domain.Difficulty

	complete    bool
	correctness Correctness
}

// New wraps a freshly generated puzzle.
func New(p *domain.Puzzle) *Game {
	return &Game{
		Cube:       p.Cube,
		Solution:   p.Solution,
		Difficulty: p.Difficulty,
	}
}

// SetCell writes a value into an editable cell. Editing a given cell or
// passing an out-of-domain symbol fails with the cell untouched.
func (g *Game) SetCell(p domain.Position, v domain.Symbol) error {
	if !v.Valid() {
		return fmt.Errorf("game: symbol out of range [0,%d]: %d", domain.SymbolCount-1, v)
	}
	cell := g.Cube.Cell(p)
	if cell.Kind == domain.Given {
		return fmt.Errorf("%w: %s", ErrGivenCell, p)
	}
	cell.Value = v
	return nil
}

// ClearCell empties an editable cell.
func (g *Game) ClearCell(p domain.Position) error {
	cell := g.Cube.Cell(p)
	if cell.Kind == domain.Given {
		return fmt.Errorf("%w: %s", ErrGivenCell, p)
	}
	cell.Value = domain.Empty
	return nil
}

// CheckCompletion recomputes and returns whether every cell holds a
// value, independent of correctness.
func (g *Game) CheckCompletion() bool {
	g.complete = len(g.Cube.Filter(func(c *domain.Cell) bool { return c.IsEmpty() })) == 0
	return g.complete
}

// Validate runs the full-cube check, records the correctness flag, and
// returns the result for the caller to present.
func (g *Game) Validate(ctx context.Context, v ports.Validator) (domain.CubeResult, error) {
	res, err := v.Validate(ctx, g.Cube)
	if err != nil {
		return res, err
	}
	if res.IsValid {
		g.correctness = Correct
	} else {
		g.correctness = Incorrect
	}
	return res, nil
}

// ResetValidationStatus returns correctness to Unknown without touching
// completeness or cell contents.
func (g *Game) ResetValidationStatus() { g.correctness = Unknown }

// Correctness returns the result of the last Validate call.
func (g *Game) Correctness() Correctness { return g.correctness }

// Won reports a finished game: complete and validated correct.
func (g *Game) Won() bool {
	return g.CheckCompletion() && g.correctness == Correct
}
