// Package generator produces playable puzzles: a fully valid solution
// cube is built first, then a difficulty-dependent fraction of cells is
// carved away and the rest become given clues. Carving does not verify
// that the remaining puzzle has a unique solution; with the high
// given-cell ratios used here that is an accepted approximation.
package generator

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/ports"
)

// Carver implements ports.Generator: fill, carve, finalize.
type Carver struct {
	Solver ports.Solver
	Method Method
}

// New wires a generator that fills cubes with the given solver using the
// default backtracking method.
func New(s ports.Solver) *Carver {
	return &Carver{Solver: s, Method: MethodBacktrack}
}

// Generate builds a puzzle for the difficulty tier. The seed determines
// both the solution search and the carving, so equal seeds reproduce
// equal puzzles for a given method.
func (g *Carver) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var (
		solution domain.SolutionGrid
		st       ports.Stats
		err      error
	)
	switch g.Method {
	case MethodAlgebraic:
		solution = Algebraic()
	default:
		solution, st, err = g.Solver.Fill(ctx, domain.EmptyGrid(), rng.Int63())
		if err != nil {
			return nil, st, err
		}
	}

	carved := carve(rng, solution, diff)

	p := &domain.Puzzle{
		ID:          uuid.NewString(),
		Difficulty:  diff,
		GeneratedAt: time.Now().UTC(),
		Cube:        domain.CubeFromGrid(carved),
		Solution:    solution,
	}
	st.Duration = time.Since(start)
	return p, st, nil
}

// carve clears cells from a copy of the solved grid until only
// round(total × ratio) givens remain. Positions are shuffled and the
// first N cleared; the rest are left untouched.
func carve(rng *rand.Rand, solved domain.SolutionGrid, diff domain.Difficulty) domain.SolutionGrid {
	keep := int(math.Round(domain.CellCount * diff.GivenRatio()))
	hide := domain.CellCount - keep
	for _, idx := range rng.Perm(domain.CellCount)[:hide] {
		solved[idx] = domain.Empty
	}
	return solved
}
