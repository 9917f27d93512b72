package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSolution fills a grid with in-range values; validity against the
// cube constraints is irrelevant for codec tests.
func testSolution() SolutionGrid {
	var g SolutionGrid
	for idx := range g {
		g[idx] = Symbol(idx % SymbolCount)
	}
	return g
}

func testPuzzle() *Puzzle {
	sol := testSolution()
	carved := sol
	for idx := 0; idx < CellCount; idx += 3 {
		carved[idx] = Empty
	}
	return &Puzzle{
		ID:          "pz-1",
		Difficulty:  Easy,
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Cube:        CubeFromGrid(carved),
		Solution:    sol,
	}
}

func TestCachedPuzzleRoundTrip(t *testing.T) {
	p := testPuzzle()
	doc := EncodeCachedPuzzle(p)

	require.Equal(t, SchemaVersion, doc.Version)
	require.Equal(t, doc.GivenCellCount, len(doc.Cells))
	require.Equal(t, CellCount, doc.GivenCellCount+doc.EmptyCellCount)
	for _, e := range doc.Cells {
		assert.Equal(t, "given", e.Kind)
	}

	back, err := DecodeCachedPuzzle(doc)
	require.NoError(t, err)
	require.Equal(t, p.Solution, back.Solution)
	require.Equal(t, p.Difficulty, back.Difficulty)

	p.Cube.ForEach(func(cell *Cell) {
		got := back.Cube.Cell(cell.Pos)
		assert.Equal(t, cell.Value, got.Value)
		assert.Equal(t, cell.Kind, got.Kind)
	})
}

func TestDecodeCachedPuzzleVersionMismatch(t *testing.T) {
	doc := EncodeCachedPuzzle(testPuzzle())
	doc.Version = 2
	_, err := DecodeCachedPuzzle(doc)
	require.ErrorIs(t, err, ErrVersionMismatch)
}

func TestDecodeCachedPuzzleMissingArrays(t *testing.T) {
	doc := EncodeCachedPuzzle(testPuzzle())
	doc.Cells = nil
	_, err := DecodeCachedPuzzle(doc)
	require.ErrorContains(t, err, "no cells array")

	doc = EncodeCachedPuzzle(testPuzzle())
	doc.Solution = nil
	_, err = DecodeCachedPuzzle(doc)
	require.ErrorContains(t, err, "no solution array")
}

func TestDecodeCellsRejectsBadEntries(t *testing.T) {
	err := DecodeCellsInto(NewCube(), []CellEntry{
		{Position: [3]int{16, 0, 0}, Value: "0", Kind: "given"},
	})
	require.ErrorContains(t, err, "position [16 0 0] out of range [0,15]")

	err = DecodeCellsInto(NewCube(), []CellEntry{
		{Position: [3]int{0, 0, 0}, Value: "zz", Kind: "given"},
	})
	require.ErrorContains(t, err, "hex digit")

	err = DecodeCellsInto(NewCube(), []CellEntry{
		{Position: [3]int{0, 0, 0}, Value: "0", Kind: "clue"},
	})
	require.ErrorContains(t, err, "unknown cell kind")
}

func TestDecodeSolutionShapeChecks(t *testing.T) {
	raw := EncodeSolution(testSolution())
	got, err := DecodeSolution(raw)
	require.NoError(t, err)
	require.Equal(t, testSolution(), got)

	short := EncodeSolution(testSolution())[:15]
	_, err = DecodeSolution(short)
	require.ErrorContains(t, err, "16 planes")

	bad := EncodeSolution(testSolution())
	bad[3][4][5] = 16
	_, err = DecodeSolution(bad)
	require.ErrorContains(t, err, "out of range")
}

func TestValidateSavedGame(t *testing.T) {
	doc := &SavedGameDoc{
		Version:  SchemaVersion,
		Cells:    []CellEntry{},
		Solution: EncodeSolution(testSolution()),
	}
	require.NoError(t, ValidateSavedGame(doc))

	doc.Version = 0
	require.ErrorIs(t, ValidateSavedGame(doc), ErrVersionMismatch)
	doc.Version = SchemaVersion

	doc.Cells = nil
	require.ErrorContains(t, ValidateSavedGame(doc), "no cells array")
	doc.Cells = []CellEntry{}

	doc.Solution = nil
	require.ErrorContains(t, ValidateSavedGame(doc), "no solution array")
}
