package domain

import "fmt"

// Cube is the 16×16×16 grid of cells. The zero value is not usable;
// construct with NewCube so every cell carries its own position.
//
// Group accessors return the backing cells, not copies, in a fixed
// traversal order. Out-of-range coordinates and unknown faces are caller
// bugs and panic with a message naming the parameter and its valid range;
// they are never recoverable conditions.
type Cube struct {
	cells [CellCount]Cell
}

// NewCube returns a cube of empty editable cells.
func NewCube() *Cube {
	c := &Cube{}
	for idx := range c.cells {
		c.cells[idx] = Cell{Pos: PositionFromIndex(idx), Value: Empty, Kind: Editable}
	}
	return c
}

// Clone returns an independent deep copy.
func (c *Cube) Clone() *Cube {
	out := *c
	return &out
}

func checkCoord(name string, v int) {
	if v < 0 || v >= Size {
		panic(fmt.Sprintf("domain: %s out of range [0,%d]: %d", name, Size-1, v))
	}
}

func checkBlock(name string, v int) {
	if v < 0 || v >= BlockCount {
		panic(fmt.Sprintf("domain: %s out of range [0,%d]: %d", name, BlockCount-1, v))
	}
}

// Cell returns the backing cell at p.
func (c *Cube) Cell(p Position) *Cell {
	checkCoord("i", p.I)
	checkCoord("j", p.J)
	checkCoord("k", p.K)
	return &c.cells[p.Index()]
}

// At returns the backing cell at (i, j, k).
func (c *Cube) At(i, j, k int) *Cell {
	return c.Cell(Position{I: i, J: j, K: k})
}

// Row returns the 16 cells with the given j and k, in ascending i order.
func (c *Cube) Row(j, k int) []*Cell {
	checkCoord("j", j)
	checkCoord("k", k)
	out := make([]*Cell, Size)
	for i := 0; i < Size; i++ {
		out[i] = &c.cells[(i*Size+j)*Size+k]
	}
	return out
}

// Column returns the 16 cells with the given i and k, in ascending j order.
func (c *Cube) Column(i, k int) []*Cell {
	checkCoord("i", i)
	checkCoord("k", k)
	out := make([]*Cell, Size)
	for j := 0; j < Size; j++ {
		out[j] = &c.cells[(i*Size+j)*Size+k]
	}
	return out
}

// Beam returns the 16 cells with the given i and j, in ascending k order.
func (c *Cube) Beam(i, j int) []*Cell {
	checkCoord("i", i)
	checkCoord("j", j)
	out := make([]*Cell, Size)
	base := (i*Size + j) * Size
	for k := 0; k < Size; k++ {
		out[k] = &c.cells[base+k]
	}
	return out
}

// SubSquare returns the 4×4 block of cells on the given face. layer fixes
// the face's constant coordinate; blockRow and blockCol address the block
// within the face's 4×4 partition. Cells are returned row-major within
// the block.
func (c *Cube) SubSquare(face Face, layer, blockRow, blockCol int) []*Cell {
	checkCoord("layer", layer)
	checkBlock("blockRow", blockRow)
	checkBlock("blockCol", blockCol)
	out := make([]*Cell, 0, Size)
	r0, c0 := blockRow*BlockSize, blockCol*BlockSize
	switch face {
	case FaceK: // k fixed, blocks span (i, j)
		for i := r0; i < r0+BlockSize; i++ {
			for j := c0; j < c0+BlockSize; j++ {
				out = append(out, &c.cells[(i*Size+j)*Size+layer])
			}
		}
	case FaceJ: // j fixed, blocks span (i, k)
		for i := r0; i < r0+BlockSize; i++ {
			for k := c0; k < c0+BlockSize; k++ {
				out = append(out, &c.cells[(i*Size+layer)*Size+k])
			}
		}
	case FaceI: // i fixed, blocks span (j, k)
		for j := r0; j < r0+BlockSize; j++ {
			for k := c0; k < c0+BlockSize; k++ {
				out = append(out, &c.cells[(layer*Size+j)*Size+k])
			}
		}
	default:
		panic(fmt.Sprintf("domain: unknown face %d: must be FaceI, FaceJ or FaceK", int(face)))
	}
	return out
}

// ForEach visits all 4096 cells in flat index order (i outermost,
// k innermost).
func (c *Cube) ForEach(visit func(*Cell)) {
	for idx := range c.cells {
		visit(&c.cells[idx])
	}
}

// Filter returns the cells matching pred, in traversal order.
func (c *Cube) Filter(pred func(*Cell) bool) []*Cell {
	var out []*Cell
	for idx := range c.cells {
		if pred(&c.cells[idx]) {
			out = append(out, &c.cells[idx])
		}
	}
	return out
}

// CountFilled returns the number of non-empty cells.
func (c *Cube) CountFilled() int {
	n := 0
	for idx := range c.cells {
		if !c.cells[idx].IsEmpty() {
			n++
		}
	}
	return n
}
