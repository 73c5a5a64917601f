package handler

import (
	"net/http"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
)

// OrderHandler handles order, billing, and notification requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, orders)
}

// Create handles POST /api/orders, for both customer checkout and the admin
// billing form.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("customer and orderItems required"))
		return
	}

	created, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusCreated, created)
}

// UpdateStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	var req models.StatusUpdateRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Invalid status"))
		return
	}

	if err := h.orderService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

// Invoice handles GET /api/orders/{id}/invoice
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	invoice, err := h.orderService.Invoice(r.Context(), id)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(invoice))
}

// Notifications handles GET /api/orders/notifications
func (h *OrderHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.orderService.Notifications(r.Context())
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, notifications)
}

// MarkNotificationsRead handles POST /api/orders/notifications/mark-read
func (h *OrderHandler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.MarkNotificationsRead(r.Context()); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
