// AngelaMos | 2026
// handler.go

package coupon

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

// RegisterRoutes mounts the coupon surface. Everything here is
// admin-only; the delete route keeps its original singular /coupon
// path because the storefront admin panel calls it that way.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator, adminOnly)

		r.Get("/coupons", h.List)
		r.Get("/coupons/{couponID}", h.Get)
		r.Post("/coupons", h.Create)
		r.Put("/coupons/{couponID}", h.Update)
		r.Delete("/coupon/{couponID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, coupons)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "couponID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, map[string]string{"insertedId": id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id := chi.URLParam(r, "couponID")
	if err := h.service.Update(r.Context(), id, &req); err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "coupon updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "couponID")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "coupon deleted"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "coupon")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "invalid coupon id")
	case errors.Is(err, core.ErrDuplicateKey):
		core.JSONError(w, core.DuplicateError("coupon_code"))
	default:
		core.InternalServerError(w, err)
	}
}
