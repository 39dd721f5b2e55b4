// AngelaMos | 2026
// handler.go

package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes keeps the route names of the original public surface,
// including the /productss/{id} spelling clients already depend on.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, moderatorOnly func(http.Handler) http.Handler,
) {
	r.Get("/allProducts", h.ListPublic)
	r.Get("/products/{email}", h.ListByOwner)
	r.Get("/productss/{productID}", h.GetByID)
	r.Get("/featuredProducts", h.ListFeatured)
	r.Get("/ReportedProducts", h.ListReported)

	r.Post("/products", h.Create)
	r.Put("/products/{productID}", h.Update)
	r.Delete("/products/{productID}", h.Delete)
	r.Post("/products/{productID}/vote", h.Vote)

	r.Patch("/products/status/{productID}", h.SetStatus)
	r.Patch("/productsFeatured/{productID}", h.SetFeatured)
	r.Patch("/productsReport/{productID}", h.SetReported)

	r.With(authenticator, moderatorOnly).Get("/products", h.ListAll)
}

// ListAll is the moderator review queue: every product, any status.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, products)
}

func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:   parseIntQuery(r, "page", 1),
		Size:   parseIntQuery(r, "size", 20),
		Search: r.URL.Query().Get("search"),
	}
	params.Normalize()

	products, total, err := h.service.ListPublic(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Paginated(w, products, params.Page, params.Size, int(total))
}

func (h *Handler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	products, err := h.service.ListByOwner(r.Context(), email)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, products)
}

func (h *Handler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	ascending := r.URL.Query().Get("sort") == "asc"

	products, err := h.service.ListFeatured(r.Context(), ascending)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, products)
}

func (h *Handler) ListReported(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListReported(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, products)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	p, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, map[string]string{"insertedId": id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.Update(r.Context(), productID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.service.Delete(r.Context(), productID); err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	p, err := h.service.Vote(r.Context(), productID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.SetStatus(r.Context(), productID, req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req FeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.SetFeatured(
		r.Context(),
		productID,
		*req.IsFeatured,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) SetReported(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.SetReported(r.Context(), productID, *req.Reported)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "product")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "invalid product id")
	default:
		core.InternalServerError(w, err)
	}
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
