package generator

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/solver"
	"svw.info/hexcube/internal/validator"
)

func newAlgebraicCarver() *Carver {
	g := New(solver.NewBacktracking())
	g.Method = MethodAlgebraic
	return g
}

func TestAlgebraicGridSatisfiesAllConstraints(t *testing.T) {
	grid := Algebraic()
	require.True(t, grid.Full())

	res, err := validator.New().Validate(context.Background(), domain.CubeFromGrid(grid))
	require.NoError(t, err)
	require.True(t, res.IsValid, "errors: %v", res.Errors)
}

func TestGenerateEasyKeepsSeventyPercent(t *testing.T) {
	p, _, err := newAlgebraicCarver().Generate(context.Background(), 42, domain.Easy)
	require.NoError(t, err)

	wantGivens := int(math.Round(domain.CellCount * 0.70))
	require.Equal(t, wantGivens, p.Cube.CountFilled())

	p.Cube.ForEach(func(c *domain.Cell) {
		if c.IsEmpty() {
			assert.Equal(t, domain.Editable, c.Kind)
		} else {
			assert.Equal(t, domain.Given, c.Kind)
			// Givens always agree with the retained solution.
			assert.Equal(t, p.Solution.At(c.Pos), c.Value)
		}
	})
}

func TestGenerateRatiosPerDifficulty(t *testing.T) {
	for _, tc := range []struct {
		diff  domain.Difficulty
		ratio float64
	}{
		{domain.Easy, 0.70},
		{domain.Medium, 0.50},
		{domain.Hard, 0.30},
	} {
		t.Run(tc.diff.String(), func(t *testing.T) {
			p, _, err := newAlgebraicCarver().Generate(context.Background(), 7, tc.diff)
			require.NoError(t, err)
			require.Equal(t, int(math.Round(domain.CellCount*tc.ratio)), p.Cube.CountFilled())
			require.Equal(t, tc.diff, p.Difficulty)
		})
	}
}

func TestGenerateGivensAlwaysValid(t *testing.T) {
	p, _, err := newAlgebraicCarver().Generate(context.Background(), 1234, domain.Hard)
	require.NoError(t, err)

	// Carving removes cells from a valid solution; it can never introduce
	// a violation.
	res, err := validator.New().Validate(context.Background(), p.Cube)
	require.NoError(t, err)
	require.True(t, res.IsValid)
}

func TestGenerateRetainsFullValidSolution(t *testing.T) {
	p, _, err := newAlgebraicCarver().Generate(context.Background(), 5, domain.Easy)
	require.NoError(t, err)
	require.True(t, p.Solution.Full())

	res, err := validator.New().Validate(context.Background(), domain.CubeFromGrid(p.Solution))
	require.NoError(t, err)
	require.True(t, res.IsValid)
}

func TestGenerateSameSeedSameCarving(t *testing.T) {
	a, _, err := newAlgebraicCarver().Generate(context.Background(), 9, domain.Easy)
	require.NoError(t, err)
	b, _, err := newAlgebraicCarver().Generate(context.Background(), 9, domain.Easy)
	require.NoError(t, err)

	require.Equal(t, domain.GridFromCube(a.Cube), domain.GridFromCube(b.Cube))
	require.NotEqual(t, a.ID, b.ID, "IDs are fresh per puzzle")
}

func TestGenerateDifferentSeedsDifferentCarving(t *testing.T) {
	a, _, err := newAlgebraicCarver().Generate(context.Background(), 1, domain.Easy)
	require.NoError(t, err)
	b, _, err := newAlgebraicCarver().Generate(context.Background(), 2, domain.Easy)
	require.NoError(t, err)
	require.NotEqual(t, domain.GridFromCube(a.Cube), domain.GridFromCube(b.Cube))
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("algebraic")
	require.NoError(t, err)
	require.Equal(t, MethodAlgebraic, m)

	m, err = ParseMethod("")
	require.NoError(t, err)
	require.Equal(t, MethodBacktrack, m)

	_, err = ParseMethod("dlx")
	require.Error(t, err)
}
