package handler

import (
	"net/http"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/middleware"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
)

// ProfileHandler handles profile read/update and password changes
type ProfileHandler struct {
	authService *service.AuthService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// guard rejects tokens that are neither the profile owner nor an admin.
func (h *ProfileHandler) guard(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := r.PathValue("email")
	if !middleware.CanAccessEmail(r.Context(), email) {
		api.RespondError(w, r, api.Forbidden("Forbidden"))
		return "", false
	}
	return email, true
}

// Get handles GET /api/profile/{email}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, ok := h.guard(w, r)
	if !ok {
		return
	}

	profile, err := h.authService.GetProfile(r.Context(), email)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, profile)
}

// Update handles PUT /api/profile/{email}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, ok := h.guard(w, r)
	if !ok {
		return
	}

	var req models.ProfileUpdateRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Name is required"))
		return
	}

	if err := h.authService.UpdateProfile(r.Context(), email, req); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

// ChangePassword handles PUT /api/profile/{email}/password
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	email, ok := h.guard(w, r)
	if !ok {
		return
	}

	var req models.PasswordChangeRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Both passwords required"))
		return
	}

	if err := h.authService.ChangePassword(r.Context(), email, req.CurrentPassword, req.NewPassword); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
