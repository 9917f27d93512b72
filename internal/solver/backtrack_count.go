package solver

import (
	"context"
	"time"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/ports"
)

// CountSolutions counts distinct completions of the grid, stopping as
// soon as limit is reached. Candidate order is deterministic here; the
// count does not depend on exploration order.
//
// This is a diagnostic for carved puzzles. Generation never calls it:
// carving makes no uniqueness promise by design.
func (s *Backtracking) CountSolutions(ctx context.Context, grid domain.SolutionGrid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	count := 0

	var dfs func(from int) bool
	dfs = func(from int) bool {
		if ctx.Err() != nil || (limit > 0 && count >= limit) {
			return true // stop early
		}
		idx := findEmpty(&grid, from)
		if idx < 0 {
			count++
			return limit > 0 && count >= limit
		}
		m := forbidden(&grid, idx)
		for v := 0; v < domain.SymbolCount; v++ {
			if m&(1<<uint(v)) != 0 {
				continue
			}
			st.Nodes++
			grid[idx] = domain.Symbol(v)
			if dfs(idx + 1) {
				return true
			}
			grid[idx] = domain.Empty
		}
		st.Backtracks++
		return false
	}

	_ = dfs(0)
	st.Duration = time.Since(start)
	return count, st, ctx.Err()
}
