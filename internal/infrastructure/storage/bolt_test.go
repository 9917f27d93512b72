package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/hexcube/internal/domain"
)

func testStateDoc() *domain.SavedGameDoc {
	var g domain.SolutionGrid
	for idx := range g {
		g[idx] = domain.Symbol(idx % domain.SymbolCount)
	}
	return &domain.SavedGameDoc{
		Version:    domain.SchemaVersion,
		Difficulty: "easy",
		Cells: []domain.CellEntry{
			{Position: [3]int{0, 0, 0}, Value: "a", Kind: "given"},
			{Position: [3]int{1, 2, 3}, Value: "5", Kind: "editable"},
		},
		Solution: domain.EncodeSolution(g),
	}
}

func openTestBolt(t *testing.T) *Bolt {
	t.Helper()
	s, err := OpenBolt(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltSaveLoadRoundTrip(t *testing.T) {
	s := openTestBolt(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testStateDoc()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, testStateDoc(), got)
}

func TestBoltLoadMissing(t *testing.T) {
	s := openTestBolt(t)
	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBoltClearIsBestEffort(t *testing.T) {
	s := openTestBolt(t)
	ctx := context.Background()

	// Clearing an empty store must not blow up.
	s.Clear(ctx)

	require.NoError(t, s.Save(ctx, testStateDoc()))
	s.Clear(ctx)
	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBoltLoadRejectsVersionMismatch(t *testing.T) {
	s := openTestBolt(t)
	ctx := context.Background()

	doc := testStateDoc()
	doc.Version = 3
	require.NoError(t, s.Save(ctx, doc))

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, domain.ErrVersionMismatch)
}

func TestBoltSaveOverwrites(t *testing.T) {
	s := openTestBolt(t)
	ctx := context.Background()

	first := testStateDoc()
	require.NoError(t, s.Save(ctx, first))

	second := testStateDoc()
	second.IsComplete = true
	tr := true
	second.IsCorrect = &tr
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, got.IsComplete)
	require.NotNil(t, got.IsCorrect)
	require.True(t, *got.IsCorrect)
}
