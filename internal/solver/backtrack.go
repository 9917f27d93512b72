// Package solver fills cubes by randomized backtracking. The next empty
// cell is always the lowest flat index (fixed scan, no most-constrained
// ordering); only the candidate value order is shuffled, so repeated runs
// explore different solutions.
package solver

import (
	"errors"

	"svw.info/hexcube/internal/domain"
)

var (
	// ErrUnfillable means the search exhausted every branch. Under the
	// default unbounded configuration this indicates a constraint bug in
	// the input grid, not a condition to retry.
	ErrUnfillable = errors.New("solver: search exhausted without a complete fill")
	// ErrBacktrackLimit aborts a run that exceeded MaxBacktracks.
	ErrBacktrackLimit = errors.New("solver: backtrack limit exceeded")
)

// Backtracking is the depth-first fill engine.
type Backtracking struct {
	// MaxBacktracks aborts clearly pathological runs when positive.
	// Zero leaves the search unbounded, the default configuration.
	MaxBacktracks int
}

func NewBacktracking() *Backtracking { return &Backtracking{} }

const fullMask = 1<<domain.SymbolCount - 1

// forbidden unions the non-empty values seen from idx along its row,
// column, beam, and its sub-square on each of the three faces — six
// 16-cell scans folded into one bitmask.
func forbidden(g *domain.SolutionGrid, idx int) uint32 {
	i, j, k := idx>>8, (idx>>4)&(domain.Size-1), idx&(domain.Size-1)
	var m uint32
	add := func(n int) {
		if n == idx {
			return
		}
		if v := g[n]; !v.IsEmpty() {
			m |= 1 << uint(v)
		}
	}
	for t := 0; t < domain.Size; t++ {
		add((t*domain.Size+j)*domain.Size + k) // row
		add((i*domain.Size+t)*domain.Size + k) // column
		add((i*domain.Size+j)*domain.Size + t) // beam
	}
	i0, j0, k0 := i&^3, j&^3, k&^3
	for r := 0; r < domain.BlockSize; r++ {
		for c := 0; c < domain.BlockSize; c++ {
			add(((i0+r)*domain.Size+(j0+c))*domain.Size + k) // face k block
			add(((i0+r)*domain.Size+j)*domain.Size + k0 + c) // face j block
			add((i*domain.Size+(j0+r))*domain.Size + k0 + c) // face i block
		}
	}
	return m
}

// Candidates returns the symbols still allowed at p, in ascending order.
func Candidates(g *domain.SolutionGrid, p domain.Position) []domain.Symbol {
	m := forbidden(g, p.Index())
	out := make([]domain.Symbol, 0, domain.SymbolCount)
	for v := 0; v < domain.SymbolCount; v++ {
		if m&(1<<uint(v)) == 0 {
			out = append(out, domain.Symbol(v))
		}
	}
	return out
}

// findEmpty returns the first unset index at or after from, or -1.
func findEmpty(g *domain.SolutionGrid, from int) int {
	for idx := from; idx < domain.CellCount; idx++ {
		if g[idx].IsEmpty() {
			return idx
		}
	}
	return -1
}
