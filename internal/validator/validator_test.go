package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/generator"
)

func TestValidateGroupDuplicatePair(t *testing.T) {
	c := domain.NewCube()
	// [1,2,3,1, empty ×12] along the row (j=0, k=0).
	c.At(0, 0, 0).Value = 1
	c.At(1, 0, 0).Value = 2
	c.At(2, 0, 0).Value = 3
	c.At(3, 0, 0).Value = 1

	res := ValidateGroup(c.Row(0, 0))
	require.False(t, res.IsValid)
	require.Equal(t, []domain.Symbol{1}, res.Duplicates)
	require.Equal(t, []domain.Position{{I: 0}, {I: 3}}, res.Positions)
}

func TestValidateGroupAllDistinct(t *testing.T) {
	c := domain.NewCube()
	for i := 0; i < domain.Size; i++ {
		c.At(i, 0, 0).Value = domain.Symbol(i)
	}
	res := ValidateGroup(c.Row(0, 0))
	require.True(t, res.IsValid)
	assert.Empty(t, res.Duplicates)
	assert.Empty(t, res.Positions)
}

func TestValidateGroupAllSameValue(t *testing.T) {
	c := domain.NewCube()
	for i := 0; i < domain.Size; i++ {
		c.At(i, 0, 0).Value = 9
	}
	res := ValidateGroup(c.Row(0, 0))
	require.False(t, res.IsValid)
	require.Equal(t, []domain.Symbol{9}, res.Duplicates)
	require.Len(t, res.Positions, 16)
}

func TestValidateEmptyCube(t *testing.T) {
	res, err := New().Validate(context.Background(), domain.NewCube())
	require.NoError(t, err)
	require.True(t, res.IsValid)
	require.Empty(t, res.Errors)
}

func TestValidateReportsDuplicateRow(t *testing.T) {
	c := domain.NewCube()
	a, b := c.At(0, 0, 0), c.At(1, 0, 0)
	a.Value, a.Kind = 5, domain.Given
	b.Value, b.Kind = 5, domain.Given

	res, err := New().Validate(context.Background(), c)
	require.NoError(t, err)
	require.False(t, res.IsValid)
	require.NotEmpty(t, res.Errors)

	first := res.Errors[0]
	assert.Equal(t, domain.GroupRow, first.Kind)
	assert.Equal(t, "row (j=0, k=0)", first.Description)
	assert.Contains(t, first.Cells, domain.Position{I: 0})
	assert.Contains(t, first.Cells, domain.Position{I: 1})
}

func TestValidateErrorOrdering(t *testing.T) {
	c := domain.NewCube()
	// Duplicate along a beam only: same i and j, different k.
	c.At(4, 4, 0).Value = 7
	c.At(4, 4, 9).Value = 7

	res, err := New().Validate(context.Background(), c)
	require.NoError(t, err)
	require.False(t, res.IsValid)
	// The two cells share only their beam: rows and columns differ in k,
	// and each face's sub-square partition separates them too.
	require.Len(t, res.Errors, 1)
	assert.Equal(t, domain.GroupBeam, res.Errors[0].Kind)
	assert.Equal(t, "beam (i=4, j=4)", res.Errors[0].Description)
}

func TestValidateFullAlgebraicCube(t *testing.T) {
	cube := domain.CubeFromGrid(generator.Algebraic())
	require.Equal(t, domain.CellCount, cube.CountFilled())

	res, err := New().Validate(context.Background(), cube)
	require.NoError(t, err)
	require.True(t, res.IsValid, "errors: %v", res.Errors)
}

func TestValidateIsIdempotent(t *testing.T) {
	c := domain.NewCube()
	c.At(0, 0, 0).Value = 5
	c.At(1, 0, 0).Value = 5

	v := New()
	first, err := v.Validate(context.Background(), c)
	require.NoError(t, err)
	second, err := v.Validate(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
