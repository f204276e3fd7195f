package library

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gamelib/internal/catalog"
	"gamelib/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the library routes. The router is expected to sit behind
// the auth middleware.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/users/{userID}/games", h.List)
	r.Get("/users/{userID}/games/{gameID}", h.Get)
	r.Put("/users/{userID}/games/{gameID}", h.Upsert)
	r.Delete("/users/{userID}/games/{gameID}", h.Remove)
	r.Post("/users/{userID}/games/{gameID}/favorite", h.Favorite)
	r.Delete("/users/{userID}/games/{gameID}/favorite", h.Unfavorite)
	r.Get("/users/{userID}/favorites", h.Favorites)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /users/{userID}/games
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUser(w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, entries, nil)
}

// Get handles GET /users/{userID}/games/{gameID}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := h.entryParams(w, r)
	if !ok {
		return
	}

	entry, err := h.service.Get(r.Context(), userID, gameID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, entry, nil)
}

// Upsert handles PUT /users/{userID}/games/{gameID}
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := h.entryParams(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	entry, err := h.service.Upsert(r.Context(), userID, gameID, status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if entry == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, entry, nil)
}

// Remove handles DELETE /users/{userID}/games/{gameID}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := h.entryParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, gameID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Favorite handles POST /users/{userID}/games/{gameID}/favorite
func (h *HTTPHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := h.entryParams(w, r)
	if !ok {
		return
	}

	entry, err := h.service.Favorite(r.Context(), userID, gameID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, entry, nil)
}

// Unfavorite handles DELETE /users/{userID}/games/{gameID}/favorite
func (h *HTTPHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	userID, gameID, ok := h.entryParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Unfavorite(r.Context(), userID, gameID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Favorites handles GET /users/{userID}/favorites
func (h *HTTPHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUser(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 || size > 100 {
		size = 20
	}

	result, err := h.service.Favorites(r.Context(), userID, page, size)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, result, nil)
}

// authorizedUser checks that the path user matches the authenticated one.
func (h *HTTPHandler) authorizedUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := chi.URLParam(r, "userID")
	if userID == "" || userID != httpx.UserIDFrom(r) {
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "You may only access your own library", nil)
		return "", false
	}
	return userID, true
}

func (h *HTTPHandler) entryParams(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	userID, ok := h.authorizedUser(w, r)
	if !ok {
		return "", 0, false
	}
	gameID, err := strconv.ParseInt(chi.URLParam(r, "gameID"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid game id", nil)
		return "", 0, false
	}
	return userID, gameID, true
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Library entry not found", nil)
	case errors.Is(err, ErrGameNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found in catalog", nil)
	case errors.Is(err, catalog.ErrUnavailable):
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Catalog upstream unavailable", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
