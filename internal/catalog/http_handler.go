package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"gamelib/internal/httpx"
)

type HTTPHandler struct {
	service  *Service
	validate *validator.Validate
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{
		service:  service,
		validate: validator.New(),
	}
}

// Register mounts the public catalog routes.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/games/search", h.Search)
	r.Get("/games/{id}", h.GetByID)
	r.Post("/games/batch", h.GetByIDs)
	r.Post("/games/filter", h.Filter)
	r.Get("/platforms", h.ListPlatforms)
}

// Search handles GET /games/search?name=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Query parameter 'name' is required", nil)
		return
	}

	games, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, games, nil)
}

// GetByID handles GET /games/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid game id", nil)
		return
	}

	game, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if game == nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Game not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, game, nil)
}

// GetByIDs handles POST /games/batch with a JSON array of ids.
func (h *HTTPHandler) GetByIDs(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	games, err := h.service.GetByIDs(r.Context(), ids)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, games, nil)
}

type filterRequest struct {
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
	Page   int    `json:"page" validate:"gte=0"`
	Size   int    `json:"size" validate:"gte=1,lte=500"`
}

// Filter handles POST /games/filter
func (h *HTTPHandler) Filter(w http.ResponseWriter, r *http.Request) {
	req := filterRequest{Size: 20}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pagination parameters", validationDetails(err))
		return
	}

	page, err := h.service.Filter(r.Context(), req.Filter, req.Sort, req.Page, req.Size)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, page, nil)
}

// ListPlatforms handles GET /platforms
func (h *HTTPHandler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.service.ListPlatforms(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, platforms, nil)
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrUnavailable) {
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Catalog upstream unavailable", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

func validationDetails(err error) []httpx.ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]httpx.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, httpx.ErrorDetail{
			Field:   fe.Field(),
			Message: "failed on '" + fe.Tag() + "' validation",
		})
	}
	return details
}
