package user

import (
	"encoding/json"
	"errors"
	"net/http"

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

// RegisterPublic mounts the unauthenticated routes.
func (h *HTTPHandler) RegisterPublic(r chi.Router) {
	r.Post("/users/register", h.RegisterUser)
	r.Post("/users/login", h.LoginUser)
}

// RegisterProtected mounts the routes behind the auth middleware.
func (h *HTTPHandler) RegisterProtected(r chi.Router) {
	r.Get("/me", h.Me)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterUser handles POST /users/register
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration payload", validationDetails(err))
		return
	}

	u, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Email already registered", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusCreated, u, nil)
}

// LoginUser handles POST /users/login
func (h *HTTPHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid login payload", validationDetails(err))
		return
	}

	token, u, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, loginResponse{Token: token, User: u}, nil)
}

// Me handles GET /me
func (h *HTTPHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	u, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, u, nil)
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
