package hint

import (
	"context"
	"fmt"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/solver"
)

// Singles implements a minimal Hinter that suggests sole candidates:
// empty cells whose six constraint groups rule out all but one symbol.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell, in traversal order, with exactly one
// remaining candidate.
func (h *Singles) Hint(ctx context.Context, c *domain.Cube) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	grid := domain.GridFromCube(c)
	for idx := 0; idx < domain.CellCount; idx++ {
		if !grid[idx].IsEmpty() {
			continue
		}
		p := domain.PositionFromIndex(idx)
		cand := solver.Candidates(&grid, p)
		if len(cand) == 1 {
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %s fits at %s", cand[0], p),
				Cell:    p,
				Value:   cand[0],
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
