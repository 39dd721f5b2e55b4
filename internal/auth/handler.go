// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	tokens    *TokenManager
	validator *validator.Validate
}

func NewHandler(tokens *TokenManager) *Handler {
	return &Handler{
		tokens:    tokens,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/jwt", h.IssueToken)
}

// IssueToken signs a 7-day identity token for the posted email. The caller
// is trusted to assert their own identity here, as the upstream sign-in
// provider has already authenticated them.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, TokenResponse{Token: token})
}
