package game

import (
	"svw.info/hexcube/internal/domain"
)

// Snapshot renders the game as its persisted document: sparse non-empty
// cells, difficulty, derived flags (correctness as nullable bool), and
// the full solution array.
func (g *Game) Snapshot() *domain.SavedGameDoc {
	var correct *bool
	switch g.correctness {
	case Correct:
		t := true
		correct = &t
	case Incorrect:
		f := false
		correct = &f
	}
	return &domain.SavedGameDoc{
		Version:    domain.SchemaVersion,
		Difficulty: g.Difficulty.String(),
		Cells:      domain.EncodeCells(g.Cube),
		IsComplete: g.CheckCompletion(),
		IsCorrect:  correct,
		Solution:   domain.EncodeSolution(g.Solution),
	}
}

// Restore rebuilds a game from a persisted document. The document is
// validated structurally first; completion is recomputed rather than
// trusted, correctness is taken as recorded.
func Restore(doc *domain.SavedGameDoc) (*Game, error) {
	if err := domain.ValidateSavedGame(doc); err != nil {
		return nil, err
	}
	cube := domain.NewCube()
	if err := domain.DecodeCellsInto(cube, doc.Cells); err != nil {
		return nil, err
	}
	sol, err := domain.DecodeSolution(doc.Solution)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Cube:       cube,
		Solution:   sol,
		Difficulty: domain.ParseDifficulty(doc.Difficulty),
	}
	switch {
	case doc.IsCorrect == nil:
		g.correctness = Unknown
	case *doc.IsCorrect:
		g.correctness = Correct
	default:
		g.correctness = Incorrect
	}
	g.CheckCompletion()
	return g, nil
}
