package domain

import "fmt"

// Size is the edge length of the cube; SymbolCount equals Size because
// every line of cells must hold each symbol exactly once.
const (
	Size        = 16
	BlockSize   = 4
	BlockCount  = Size / BlockSize
	SymbolCount = 16
	CellCount   = Size * Size * Size
)

// Symbol is one of the 16 hex digits (0..15) or Empty for an unset cell.
type Symbol int8

// Empty marks a cell with no value.
const Empty Symbol = -1

const hexDigits = "0123456789abcdef"

// IsEmpty reports whether the symbol is unset.
func (s Symbol) IsEmpty() bool { return s < 0 }

// Valid reports whether the symbol is one of the 16 playable values.
func (s Symbol) Valid() bool { return s >= 0 && s < SymbolCount }

// String renders the symbol as a single hex digit, or "." when empty.
func (s Symbol) String() string {
	if !s.Valid() {
		return "."
	}
	return string(hexDigits[s])
}

// ParseSymbol converts a one-character hex digit into a Symbol.
func ParseSymbol(s string) (Symbol, error) {
	if len(s) != 1 {
		return Empty, fmt.Errorf("domain: symbol must be a single hex digit, got %q", s)
	}
	c := s[0]
	switch {
	case c >= '0' && c <= '9':
		return Symbol(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return Symbol(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return Symbol(c-'A') + 10, nil
	}
	return Empty, fmt.Errorf("domain: symbol must be a single hex digit, got %q", s)
}

// Position addresses a cell by its (i, j, k) coordinates, each in [0, 15].
type Position struct {
	I int `json:"i"`
	J int `json:"j"`
	K int `json:"k"`
}

// Valid reports whether all three coordinates are in [0, Size).
func (p Position) Valid() bool {
	return p.I >= 0 && p.I < Size && p.J >= 0 && p.J < Size && p.K >= 0 && p.K < Size
}

// Index linearizes the position with i outermost, k innermost.
func (p Position) Index() int {
	return (p.I*Size+p.J)*Size + p.K
}

// PositionFromIndex is the inverse of Position.Index.
func PositionFromIndex(idx int) Position {
	return Position{I: idx >> 8, J: (idx >> 4) & (Size - 1), K: idx & (Size - 1)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.I, p.J, p.K)
}

// CellKind distinguishes puzzle clues from player-fillable cells.
type CellKind int8

const (
	// Editable cells may be filled or cleared by the player.
	Editable CellKind = iota
	// Given cells are clues; their value never changes after generation.
	Given
)

func (k CellKind) String() string {
	if k == Given {
		return "given"
	}
	return "editable"
}

// ParseCellKind converts a document kind tag into a CellKind.
func ParseCellKind(s string) (CellKind, error) {
	switch s {
	case "given":
		return Given, nil
	case "editable":
		return Editable, nil
	}
	return Editable, fmt.Errorf("domain: unknown cell kind %q", s)
}

// Cell is one entry of the cube. Pos always equals the cell's index within
// its owning Cube.
type Cell struct {
	Pos   Position
	Value Symbol
	Kind  CellKind
}

// IsEmpty reports whether the cell holds no value.
func (c *Cell) IsEmpty() bool { return c.Value.IsEmpty() }

// SolutionGrid is a fully or partially filled cube as bare values, flat
// indexed by Position.Index. It is the working representation for the
// solver and the retained solution of a generated puzzle.
type SolutionGrid [CellCount]Symbol

// EmptyGrid returns a grid with every cell unset.
func EmptyGrid() SolutionGrid {
	var g SolutionGrid
	for i := range g {
		g[i] = Empty
	}
	return g
}

// At returns the value stored at p.
func (g *SolutionGrid) At(p Position) Symbol { return g[p.Index()] }

// Full reports whether no cell is unset.
func (g *SolutionGrid) Full() bool {
	for _, v := range g {
		if v.IsEmpty() {
			return false
		}
	}
	return true
}

// GridFromCube copies the cube's values into a flat grid.
func GridFromCube(c *Cube) SolutionGrid {
	var g SolutionGrid
	for idx := range c.cells {
		g[idx] = c.cells[idx].Value
	}
	return g
}

// CubeFromGrid builds a finalized puzzle cube: every filled position
// becomes a Given cell, every unset position stays Editable and empty.
func CubeFromGrid(g SolutionGrid) *Cube {
	c := NewCube()
	for idx, v := range g {
		if v.IsEmpty() {
			continue
		}
		cell := &c.cells[idx]
		cell.Value = v
		cell.Kind = Given
	}
	return c
}
