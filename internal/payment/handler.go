// AngelaMos | 2026
// handler.go

package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/create-payment-intent", h.Quote)
	r.Post("/payments", h.Record)
	r.Get("/payment/{email}", h.Latest)
	r.Get("/payments/{email}", h.History)
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, quote)
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Record(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, map[string]string{"insertedId": id})
}

// Latest returns the customer's most recent payment, matching the
// single-document lookup the storefront's receipt page expects.
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Latest(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.History(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, payments)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "payment")
	case errors.Is(err, core.ErrUpstream):
		core.JSONError(w, core.UpstreamError("payment provider unavailable"))
	default:
		core.InternalServerError(w, err)
	}
}
