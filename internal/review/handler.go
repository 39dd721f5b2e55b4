// AngelaMos | 2026
// handler.go

package review

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type CreateReviewRequest struct {
	ProductID     string `json:"productId"     validate:"required"`
	ReviewerName  string `json:"reviewerName"  validate:"max=100"`
	ReviewerImage string `json:"reviewerImage" validate:"omitempty,url"`
	Rating        int    `json:"rating"        validate:"min=0,max=5"`
	Text          string `json:"text"          validate:"max=5000"`
}

type Handler struct {
	repo      Repository
	validator *validator.Validate
}

func NewHandler(repo Repository) *Handler {
	return &Handler{
		repo:      repo,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/allReviews/{productID}", h.ListByProduct)
	r.Post("/productsReview", h.Create)
}

func (h *Handler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	reviews, err := h.repo.ListByProduct(r.Context(), productID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, reviews)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.repo.Insert(r.Context(), &Review{
		ProductID:     req.ProductID,
		ReviewerName:  req.ReviewerName,
		ReviewerImage: req.ReviewerImage,
		Rating:        req.Rating,
		Text:          req.Text,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, map[string]string{"insertedId": id})
}
