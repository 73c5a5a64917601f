package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/db/repository"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/websockets"
)

// NotificationLimit caps the notification feed the dashboards poll.
const NotificationLimit = 50

// OrderService handles order and billing business logic
type OrderService struct {
	repos *repository.Repositories
	hub   *websockets.Hub
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, hub *websockets.Hub) *OrderService {
	return &OrderService{
		repos: repos,
		hub:   hub,
	}
}

// ListOrders retrieves orders with their line items, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.repos.Order.List(ctx)
}

// GetOrder retrieves one order
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.repos.Order.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, api.NotFound("Order not found")
	}
	return order, err
}

// CreateOrder persists an order atomically (header, line items, one
// notification row) and then announces it to connected admin dashboards.
// The notification row is part of the transaction; the socket broadcast is
// best-effort delivery on top of it.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	order, unresolved, err := s.repos.Order.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.hub.Publish(websockets.EventOrderNew, order)
	s.hub.Publish(websockets.EventNotificationNew, map[string]interface{}{
		"orderId": order.ID,
		"message": fmt.Sprintf("New order #%d from %s - %s", order.ID, order.Customer, order.Total),
	})

	return &models.OrderResponse{Order: *order, Unresolved: unresolved}, nil
}

// UpdateStatus moves an order to a new status. pending is the only state
// with outgoing transitions; repeating the current value is a no-op success.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	if !status.Valid() {
		return api.BadRequest("Invalid status")
	}

	err := s.repos.Order.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return api.NotFound("Order not found")
	}
	if errors.Is(err, repository.ErrTerminalStatus) {
		return api.Conflict("Order status can no longer change")
	}
	if err != nil {
		return err
	}

	s.hub.Publish(websockets.EventOrderStatus, map[string]interface{}{
		"id":     id,
		"status": status,
	})
	return nil
}

// Notifications retrieves the latest notifications for the admin feed
func (s *OrderService) Notifications(ctx context.Context) ([]models.Notification, error) {
	return s.repos.Notification.Latest(ctx, NotificationLimit)
}

// MarkNotificationsRead marks the whole feed read
func (s *OrderService) MarkNotificationsRead(ctx context.Context) error {
	return s.repos.Notification.MarkAllRead(ctx)
}

// Invoice renders the printable text invoice for an order
func (s *OrderService) Invoice(ctx context.Context, id int64) (string, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderInvoice(order), nil
}
