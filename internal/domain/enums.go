package domain

import "fmt"

// Difficulty labels how many clue cells a generated puzzle keeps.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// GivenRatio is the fraction of cells kept as givens when carving.
func (d Difficulty) GivenRatio() float64 {
	switch d {
	case Medium:
		return 0.50
	case Hard:
		return 0.30
	default:
		return 0.70 // Easy
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// ParseDifficulty converts a difficulty tag; unknown tags default to Easy.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "medium":
		return Medium
	case "hard":
		return Hard
	default:
		return Easy
	}
}

// Face identifies which coordinate is held constant as the layer of a
// sub-square: FaceI fixes i (blocks span j,k), FaceJ fixes j (blocks span
// i,k), FaceK fixes k (blocks span i,j).
type Face int

const (
	FaceI Face = iota
	FaceJ
	FaceK
)

// Faces lists all three faces in enumeration order.
var Faces = [3]Face{FaceI, FaceJ, FaceK}

func (f Face) String() string {
	switch f {
	case FaceI:
		return "i"
	case FaceJ:
		return "j"
	case FaceK:
		return "k"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// GroupKind names the four families of 16-cell constraint groups.
type GroupKind int

const (
	GroupRow GroupKind = iota
	GroupColumn
	GroupBeam
	GroupSubSquare
)

func (k GroupKind) String() string {
	switch k {
	case GroupRow:
		return "row"
	case GroupColumn:
		return "column"
	case GroupBeam:
		return "beam"
	case GroupSubSquare:
		return "sub-square"
	}
	return fmt.Sprintf("GroupKind(%d)", int(k))
}
