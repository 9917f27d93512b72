package usecase

import (
	"context"
	"errors"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/ports"
)

// Service bundles the engine's providers behind one façade for the CLI
// and the HTTP adapter.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	States    ports.StateStore
	Puzzles   ports.PuzzleStore
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, states ports.StateStore, puzzles ports.PuzzleStore) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, States: states, Puzzles: puzzles}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, c *domain.Cube) (domain.CubeResult, error) {
	if u.Validator == nil {
		return domain.CubeResult{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, c)
}

func (u *Service) Hint(ctx context.Context, c *domain.Cube) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, c)
}

func (u *Service) CountSolutions(ctx context.Context, grid domain.SolutionGrid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, grid, limit)
}

// Game-state persistence.

func (u *Service) SaveState(ctx context.Context, doc *domain.SavedGameDoc) error {
	if u.States == nil {
		return errNotConfigured
	}
	return u.States.Save(ctx, doc)
}

func (u *Service) LoadState(ctx context.Context) (*domain.SavedGameDoc, error) {
	if u.States == nil {
		return nil, errNotConfigured
	}
	return u.States.Load(ctx)
}

func (u *Service) ClearState(ctx context.Context) {
	if u.States == nil {
		return
	}
	u.States.Clear(ctx)
}

// Cached-puzzle persistence.

func (u *Service) SavePuzzle(ctx context.Context, doc *domain.CachedPuzzleDoc) error {
	if u.Puzzles == nil {
		return errNotConfigured
	}
	return u.Puzzles.Save(ctx, doc)
}

func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.CachedPuzzleDoc, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.Load(ctx, id)
}

func (u *Service) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.List(ctx)
}
