package domain

import (
	"errors"
	"fmt"
	"time"
)

// SchemaVersion is the current wire format of both document types.
// Consumers reject any other version outright; there is no migration.
const SchemaVersion = 1

// ErrVersionMismatch marks a document written under a different schema
// version.
var ErrVersionMismatch = errors.New("domain: document schema version mismatch")

// CellEntry is the sparse wire form of one non-empty cell. Position is
// ordered [i, j, k]; Value is a single hex digit.
type CellEntry struct {
	Position [3]int `json:"position"`
	Value    string `json:"value"`
	Kind     string `json:"type"`
}

// CachedPuzzleDoc is the document produced by offline pre-generation and
// consumed at startup. Only non-empty cells are listed; the solution array
// is always fully populated.
type CachedPuzzleDoc struct {
	Version        int         `json:"version"`
	ID             string      `json:"id,omitempty"`
	Difficulty     string      `json:"difficulty"`
	GeneratedAt    time.Time   `json:"generatedAt"`
	Cells          []CellEntry `json:"cells"`
	GivenCellCount int         `json:"givenCellCount"`
	EmptyCellCount int         `json:"emptyCellCount"`
	Solution       [][][]int   `json:"solution"`
}

// SavedGameDoc is the persisted game-state document stored under a fixed
// key. IsCorrect is tri-state: nil means not yet validated.
type SavedGameDoc struct {
	Version    int         `json:"version"`
	Difficulty string      `json:"difficulty"`
	Cells      []CellEntry `json:"cells"`
	IsComplete bool        `json:"isComplete"`
	IsCorrect  *bool       `json:"isCorrect"`
	Solution   [][][]int   `json:"solution"`
}

// EncodeCells lists the cube's non-empty cells in traversal order.
func EncodeCells(c *Cube) []CellEntry {
	out := make([]CellEntry, 0, c.CountFilled())
	c.ForEach(func(cell *Cell) {
		if cell.IsEmpty() {
			return
		}
		out = append(out, CellEntry{
			Position: [3]int{cell.Pos.I, cell.Pos.J, cell.Pos.K},
			Value:    cell.Value.String(),
			Kind:     cell.Kind.String(),
		})
	})
	return out
}

// DecodeCellsInto applies a sparse cell list onto a fresh cube. Every
// listed position must be an in-range integer triple.
func DecodeCellsInto(c *Cube, entries []CellEntry) error {
	for n, e := range entries {
		p := Position{I: e.Position[0], J: e.Position[1], K: e.Position[2]}
		if !p.Valid() {
			return fmt.Errorf("domain: cell %d: position %v out of range [0,%d]", n, e.Position, Size-1)
		}
		v, err := ParseSymbol(e.Value)
		if err != nil {
			return fmt.Errorf("domain: cell %d at %s: %w", n, p, err)
		}
		kind, err := ParseCellKind(e.Kind)
		if err != nil {
			return fmt.Errorf("domain: cell %d at %s: %w", n, p, err)
		}
		cell := &c.cells[p.Index()]
		cell.Value = v
		cell.Kind = kind
	}
	return nil
}

// EncodeSolution renders the grid as nested [i][j][k] int arrays.
func EncodeSolution(g SolutionGrid) [][][]int {
	out := make([][][]int, Size)
	for i := 0; i < Size; i++ {
		plane := make([][]int, Size)
		for j := 0; j < Size; j++ {
			line := make([]int, Size)
			for k := 0; k < Size; k++ {
				line[k] = int(g[(i*Size+j)*Size+k])
			}
			plane[j] = line
		}
		out[i] = plane
	}
	return out
}

// DecodeSolution parses a nested solution array, requiring the full
// 16×16×16 shape with every value in [0, 15].
func DecodeSolution(raw [][][]int) (SolutionGrid, error) {
	var g SolutionGrid
	if len(raw) != Size {
		return g, fmt.Errorf("domain: solution must have %d planes, got %d", Size, len(raw))
	}
	for i, plane := range raw {
		if len(plane) != Size {
			return g, fmt.Errorf("domain: solution plane %d must have %d lines, got %d", i, Size, len(plane))
		}
		for j, line := range plane {
			if len(line) != Size {
				return g, fmt.Errorf("domain: solution line [%d][%d] must have %d values, got %d", i, j, Size, len(line))
			}
			for k, v := range line {
				if v < 0 || v >= SymbolCount {
					return g, fmt.Errorf("domain: solution value at [%d][%d][%d] out of range [0,%d]: %d", i, j, k, SymbolCount-1, v)
				}
				g[(i*Size+j)*Size+k] = Symbol(v)
			}
		}
	}
	return g, nil
}

// EncodeCachedPuzzle renders a generated puzzle as its cached document.
func EncodeCachedPuzzle(p *Puzzle) *CachedPuzzleDoc {
	cells := EncodeCells(p.Cube)
	return &CachedPuzzleDoc{
		Version:        SchemaVersion,
		ID:             p.ID,
		Difficulty:     p.Difficulty.String(),
		GeneratedAt:    p.GeneratedAt,
		Cells:          cells,
		GivenCellCount: len(cells),
		EmptyCellCount: CellCount - len(cells),
		Solution:       EncodeSolution(p.Solution),
	}
}

// DecodeCachedPuzzle validates and rebuilds a puzzle from its cached
// document.
func DecodeCachedPuzzle(doc *CachedPuzzleDoc) (*Puzzle, error) {
	if doc.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, doc.Version, SchemaVersion)
	}
	if doc.Cells == nil {
		return nil, errors.New("domain: cached puzzle document has no cells array")
	}
	if doc.Solution == nil {
		return nil, errors.New("domain: cached puzzle document has no solution array")
	}
	cube := NewCube()
	if err := DecodeCellsInto(cube, doc.Cells); err != nil {
		return nil, err
	}
	sol, err := DecodeSolution(doc.Solution)
	if err != nil {
		return nil, err
	}
	return &Puzzle{
		ID:          doc.ID,
		Difficulty:  ParseDifficulty(doc.Difficulty),
		GeneratedAt: doc.GeneratedAt,
		Cube:        cube,
		Solution:    sol,
	}, nil
}

// ValidateSavedGame checks the structural invariants of a persisted
// game-state document before it is applied.
func ValidateSavedGame(doc *SavedGameDoc) error {
	if doc.Version != SchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, doc.Version, SchemaVersion)
	}
	if doc.Cells == nil {
		return errors.New("domain: saved game document has no cells array")
	}
	if doc.Solution == nil {
		return errors.New("domain: saved game document has no solution array")
	}
	return nil
}
