package domain

// GroupResult is the outcome of checking one 16-cell constraint group.
// Duplicates lists every value occurring more than once, ascending;
// Positions holds all cells carrying a duplicated value, grouped by value
// in the group's traversal order.
type GroupResult struct {
	IsValid    bool       `json:"isValid"`
	Duplicates []Symbol   `json:"duplicates,omitempty"`
	Positions  []Position `json:"positions,omitempty"`
}

// ValidationError describes one failing constraint group.
type ValidationError struct {
	Kind        GroupKind  `json:"kind"`
	Description string     `json:"description"`
	Cells       []Position `json:"cells"`
}

// CubeResult aggregates all 1536 group checks. Errors are ordered: rows,
// columns, beams, then sub-squares, each family in ascending coordinate
// order.
type CubeResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}
