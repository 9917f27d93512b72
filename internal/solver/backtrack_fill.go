package solver

import (
	"context"
	"math/rand"
	"time"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/ports"
)

// Fill completes the grid by depth-first search: assign a shuffled
// candidate at the first empty index, recurse, and undo on failure.
// The seed drives candidate shuffling only.
//
// The passed grid is copied; the caller's value is untouched. The scan
// for the next empty cell starts where the parent frame left off, which
// is safe because the search never skips an empty index.
func (s *Backtracking) Fill(ctx context.Context, grid domain.SolutionGrid, seed int64) (domain.SolutionGrid, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	var st ports.Stats
	var abort error

	var dfs func(from int) bool
	dfs = func(from int) bool {
		if err := ctx.Err(); err != nil {
			abort = err
			return false
		}
		idx := findEmpty(&grid, from)
		if idx < 0 {
			return true
		}
		m := forbidden(&grid, idx)
		if m == fullMask {
			st.Backtracks++
			return false
		}
		cand := make([]domain.Symbol, 0, domain.SymbolCount)
		for v := 0; v < domain.SymbolCount; v++ {
			if m&(1<<uint(v)) == 0 {
				cand = append(cand, domain.Symbol(v))
			}
		}
		rng.Shuffle(len(cand), func(a, b int) { cand[a], cand[b] = cand[b], cand[a] })
		for _, v := range cand {
			st.Nodes++
			grid[idx] = v
			if dfs(idx + 1) {
				return true
			}
			grid[idx] = domain.Empty
			if abort != nil {
				return false
			}
			if s.MaxBacktracks > 0 && st.Backtracks >= s.MaxBacktracks {
				abort = ErrBacktrackLimit
				return false
			}
		}
		st.Backtracks++
		return false
	}

	ok := dfs(0)
	st.Duration = time.Since(start)
	if !ok {
		if abort != nil {
			return grid, st, abort
		}
		return grid, st, ErrUnfillable
	}
	return grid, st, nil
}
