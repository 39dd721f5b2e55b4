// AngelaMos | 2026
// handler.go

package trending

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/trendingsProducts", h.List)
	r.Post("/trendingProducts/{entryID}/vote", h.Vote)
}

// List ranks by votes, highest first unless sort=asc.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ascending := r.URL.Query().Get("sort") == "asc"

	entries, err := h.repo.List(r.Context(), ascending)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, entries)
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	entry, err := h.repo.Vote(r.Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "trending entry")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid entry id")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, entry)
}
