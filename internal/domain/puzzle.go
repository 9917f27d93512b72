package domain

import "time"

// Puzzle is the generator's output: a carved cube of given cells plus the
// untouched full solution it was carved from. The solution grid is an
// independent copy and is never overwritten by player edits.
type Puzzle struct {
	ID          string
	Difficulty  Difficulty
	GeneratedAt time.Time
	Cube        *Cube
	Solution    SolutionGrid
}

// Hint suggests a forced value for one empty cell.
type Hint struct {
	Message string   `json:"message,omitempty"`
	Cell    Position `json:"cell"`
	Value   Symbol   `json:"value"`
}

// PuzzleMeta is a lightweight listing entry for stored puzzles.
type PuzzleMeta struct {
	ID             string     `json:"id"`
	Difficulty     Difficulty `json:"difficulty"`
	GeneratedAt    time.Time  `json:"generatedAt"`
	GivenCellCount int        `json:"givenCellCount"`
}
