package handler

import (
	"net/http"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// authResponse is a profile with its session token.
type authResponse struct {
	models.Profile
	Token string `json:"token"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("All fields are required"))
		return
	}

	profile, token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	api.Respond(w, http.StatusCreated, authResponse{Profile: *profile, Token: token})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Email and password required"))
		return
	}

	profile, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	api.Respond(w, http.StatusOK, authResponse{Profile: *profile, Token: token})
}
