package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/generator"
)

func TestHintFindsSoleCandidate(t *testing.T) {
	grid := generator.Algebraic()
	p := domain.Position{I: 3, J: 7, K: 11}
	want := grid.At(p)
	grid[p.Index()] = domain.Empty

	h, found, err := NewSingles().Hint(context.Background(), domain.CubeFromGrid(grid))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, p, h.Cell)
	assert.Equal(t, want, h.Value)
	assert.NotEmpty(t, h.Message)
}

func TestHintNoneOnEmptyCube(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), domain.NewCube())
	require.NoError(t, err)
	require.False(t, found)
}

func TestHintNoneOnFullCube(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), domain.CubeFromGrid(generator.Algebraic()))
	require.NoError(t, err)
	require.False(t, found)
}
