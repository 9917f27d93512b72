// Package validator implements the exhaustive constraint check: 256 rows,
// 256 columns, 256 beams and 768 sub-squares, 1536 groups in total, each
// required to hold every symbol at most once.
package validator

import (
	"context"
	"fmt"

	"svw.info/hexcube/internal/domain"
)

// CubeValidator checks cubes group by group. It keeps no state; results
// depend only on the cube passed in.
type CubeValidator struct{}

func New() *CubeValidator { return &CubeValidator{} }

// ValidateGroup checks one 16-cell group for duplicated symbols.
// Duplicates lists each value occurring more than once; Positions holds
// every cell carrying such a value, not just one pair.
func ValidateGroup(cells []*domain.Cell) domain.GroupResult {
	var occ [domain.SymbolCount][]domain.Position
	for _, c := range cells {
		if c.IsEmpty() {
			continue
		}
		occ[c.Value] = append(occ[c.Value], c.Pos)
	}
	res := domain.GroupResult{IsValid: true}
	for v := 0; v < domain.SymbolCount; v++ {
		if len(occ[v]) > 1 {
			res.IsValid = false
			res.Duplicates = append(res.Duplicates, domain.Symbol(v))
			res.Positions = append(res.Positions, occ[v]...)
		}
	}
	return res
}

// Validate checks all 1536 groups and concatenates the failures in fixed
// enumeration order: rows, columns, beams, then sub-squares per face.
// Running it twice on an unchanged cube yields identical results.
func (v *CubeValidator) Validate(ctx context.Context, c *domain.Cube) (domain.CubeResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.CubeResult{}, err
	}
	out := domain.CubeResult{IsValid: true}
	record := func(kind domain.GroupKind, desc string, g domain.GroupResult) {
		if g.IsValid {
			return
		}
		out.IsValid = false
		out.Errors = append(out.Errors, domain.ValidationError{
			Kind:        kind,
			Description: desc,
			Cells:       g.Positions,
		})
	}

	for j := 0; j < domain.Size; j++ {
		for k := 0; k < domain.Size; k++ {
			record(domain.GroupRow,
				fmt.Sprintf("row (j=%d, k=%d)", j, k),
				ValidateGroup(c.Row(j, k)))
		}
	}
	for i := 0; i < domain.Size; i++ {
		for k := 0; k < domain.Size; k++ {
			record(domain.GroupColumn,
				fmt.Sprintf("column (i=%d, k=%d)", i, k),
				ValidateGroup(c.Column(i, k)))
		}
	}
	for i := 0; i < domain.Size; i++ {
		for j := 0; j < domain.Size; j++ {
			record(domain.GroupBeam,
				fmt.Sprintf("beam (i=%d, j=%d)", i, j),
				ValidateGroup(c.Beam(i, j)))
		}
	}
	for _, face := range domain.Faces {
		for layer := 0; layer < domain.Size; layer++ {
			for br := 0; br < domain.BlockCount; br++ {
				for bc := 0; bc < domain.BlockCount; bc++ {
					record(domain.GroupSubSquare,
						fmt.Sprintf("sub-square (face=%s, layer=%d, block=%d,%d)", face, layer, br, bc),
						ValidateGroup(c.SubSquare(face, layer, br, bc)))
				}
			}
		}
	}
	return out, nil
}
