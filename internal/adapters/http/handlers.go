// Package httpadapter exposes the engine over a JSON API. It contains no
// constraint logic of its own; validation and generation results pass
// through unchanged so clients can drive highlighting directly.
package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"svw.info/hexcube/internal/domain"
	"svw.info/hexcube/internal/infrastructure/storage"
	"svw.info/hexcube/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Router builds the API routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.handleGenerate)
		r.Post("/validate", h.handleValidate)
		r.Post("/hint", h.handleHint)
		r.Get("/state", h.handleStateLoad)
		r.Put("/state", h.handleStateSave)
		r.Delete("/state", h.handleStateClear)
		r.Get("/puzzles", h.handlePuzzleList)
		r.Get("/puzzles/{id}", h.handlePuzzleLoad)
	})
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errResp{Error: err.Error()})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.CachedPuzzleDoc `json:"puzzle"`
	Seed       int64                   `json:"seed"`
	DurationMs int64                   `json:"durationMs"`
	Nodes      int                     `json:"nodes"`
	Backtracks int                     `json:"backtracks"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeErr(w, r, http.StatusBadRequest, err)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		writeErr(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, generateResp{
		Puzzle:     domain.EncodeCachedPuzzle(p),
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		Backtracks: st.Backtracks,
	})
}

// ---- Validate / Hint ----

type cellsReq struct {
	Cells []domain.CellEntry `json:"cells"`
}

func (h *Handler) decodeCube(w http.ResponseWriter, r *http.Request) (*domain.Cube, bool) {
	var req cellsReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeErr(w, r, http.StatusBadRequest, err)
		return nil, false
	}
	cube := domain.NewCube()
	if err := domain.DecodeCellsInto(cube, req.Cells); err != nil {
		writeErr(w, r, http.StatusBadRequest, err)
		return nil, false
	}
	return cube, true
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	cube, ok := h.decodeCube(w, r)
	if !ok {
		return
	}
	res, err := h.UC.Validate(r.Context(), cube)
	if err != nil {
		writeErr(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, res)
}

type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	cube, ok := h.decodeCube(w, r)
	if !ok {
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), cube)
	if err != nil {
		writeErr(w, r, http.StatusInternalServerError, err)
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Hint = &hint
	}
	render.JSON(w, r, resp)
}

// ---- Game state ----

func (h *Handler) handleStateLoad(w http.ResponseWriter, r *http.Request) {
	doc, err := h.UC.LoadState(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			writeErr(w, r, http.StatusNotFound, err)
		case errors.Is(err, domain.ErrVersionMismatch):
			writeErr(w, r, http.StatusConflict, err)
		default:
			writeErr(w, r, http.StatusInternalServerError, err)
		}
		return
	}
	render.JSON(w, r, doc)
}

func (h *Handler) handleStateSave(w http.ResponseWriter, r *http.Request) {
	var doc domain.SavedGameDoc
	if err := render.DecodeJSON(r.Body, &doc); err != nil {
		writeErr(w, r, http.StatusBadRequest, err)
		return
	}
	if err := domain.ValidateSavedGame(&doc); err != nil {
		writeErr(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.UC.SaveState(r.Context(), &doc); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, storage.ErrQuotaExceeded) {
			status = http.StatusInsufficientStorage
		}
		writeErr(w, r, status, err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) handleStateClear(w http.ResponseWriter, r *http.Request) {
	h.UC.ClearState(r.Context())
	render.NoContent(w, r)
}

// ---- Cached puzzles ----

func (h *Handler) handlePuzzleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.ListPuzzles(r.Context())
	if err != nil {
		writeErr(w, r, http.StatusInternalServerError, err)
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	render.JSON(w, r, metas)
}

func (h *Handler) handlePuzzleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.UC.LoadPuzzle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			writeErr(w, r, http.StatusNotFound, err)
		case errors.Is(err, domain.ErrVersionMismatch):
			writeErr(w, r, http.StatusConflict, err)
		default:
			writeErr(w, r, http.StatusInternalServerError, err)
		}
		return
	}
	render.JSON(w, r, doc)
}
