package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/models"
	"github.com/HammerMeetNail/bloomnext/internal/services"
)

const maxBodyBytes = 64 << 10

type AuthHandler struct {
	authService services.AuthServiceInterface
	secure      bool // Use secure cookies (HTTPS only)
}

func NewAuthHandler(authService services.AuthServiceInterface, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		secure:      secure,
	}
}

type AuthResponse struct {
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse is returned when a submitted form fails validation.
type FieldErrorResponse struct {
	Error map[string][]string `json:"error"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginParams
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	SetUserCookie(w, user.Username, h.secure)
	writeJSON(w, http.StatusOK, AuthResponse{User: user, Message: "Logged in successfully"})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterParams
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	SetUserCookie(w, user.Username, h.secure)
	writeJSON(w, http.StatusCreated, AuthResponse{User: user, Message: "Account created"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearUserCookie(w, h.secure)
	writeJSON(w, http.StatusOK, AuthResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{User: user})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// APINotFound answers unmatched API paths with a JSON error instead of the HTML 404 page.
func APINotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

// decodeJSON reads a bounded JSON body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeServiceError maps errors shared by the form-backed services.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var formErr *services.FormError
	switch {
	case errors.As(err, &formErr):
		writeJSON(w, http.StatusBadRequest, FieldErrorResponse{Error: formErr.Fields})
	case errors.Is(err, services.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "Your cart is empty")
	case errors.Is(err, services.ErrQuantityTooLarge):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Quantity cannot exceed %d", models.MaxItemQuantity))
	case errors.Is(err, services.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, services.ErrCartItemNotFound):
		writeError(w, http.StatusNotFound, "Item is not in your cart")
	default:
		logging.FromContext(r.Context()).Error("Request failed", map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
