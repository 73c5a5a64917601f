package handler

import (
	"net/http"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/middleware"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
)

// ContactHandler handles the contact form and the admin message inbox
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("All fields are required"))
		return
	}

	created, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"id":      created.ID,
	})
}

// List handles GET /api/contact
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, messages)
}

// ListByEmail handles GET /api/contact/user/{email}
func (h *ContactHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if !middleware.CanAccessEmail(r.Context(), email) {
		api.RespondError(w, r, api.Forbidden("Forbidden"))
		return
	}

	messages, err := h.contactService.ListByEmail(r.Context(), email)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, messages)
}

// Reply handles PUT /api/contact/{id}/reply
func (h *ContactHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	var req models.ReplyRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Reply is required"))
		return
	}

	if err := h.contactService.Reply(r.Context(), id, req.Reply); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

// MarkRead handles PUT /api/contact/{id}/read
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	if err := h.contactService.MarkRead(r.Context(), id); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
