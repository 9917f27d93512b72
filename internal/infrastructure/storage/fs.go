package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/hexcube/internal/domain"
)

// FS stores cached-puzzle documents as JSON files, one directory per
// difficulty.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var difficultyDirs = []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, doc *domain.CachedPuzzleDoc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil || doc.ID == "" {
		return errors.New("storage: cached puzzle has no ID")
	}
	target := s.pathFor(doc.ID, domain.ParseDifficulty(doc.Difficulty))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return classify(err)
	}
	f, err := os.Create(target)
	if err != nil {
		return classify(err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return classify(err)
	}
	return nil
}

func (s *FS) Load(ctx context.Context, id string) (*domain.CachedPuzzleDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, d := range difficultyDirs {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, classify(err)
		}
		var doc domain.CachedPuzzleDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("storage: corrupt cached puzzle %s: %w", id, err)
		}
		if doc.Version != domain.SchemaVersion {
			return nil, fmt.Errorf("%w: got %d, want %d", domain.ErrVersionMismatch, doc.Version, domain.SchemaVersion)
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("%w: cached puzzle %s", ErrNotFound, id)
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, d := range difficultyDirs {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, classify(err)
		}
		for _, e := range ents {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), name))
			if err != nil {
				continue
			}
			var doc domain.CachedPuzzleDoc
			if err := json.Unmarshal(data, &doc); err != nil || doc.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:             doc.ID,
				Difficulty:     domain.ParseDifficulty(doc.Difficulty),
				GeneratedAt:    doc.GeneratedAt,
				GivenCellCount: doc.GivenCellCount,
			})
		}
	}
	return out, nil
}
