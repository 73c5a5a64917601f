package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pizza-pixel/ordering-service/internal/models"
)

// NotificationRepository handles notification data access
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Latest retrieves the most recent notifications, newest first.
func (r *NotificationRepository) Latest(ctx context.Context, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, order_id, message, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`

	notifications := []models.Notification{}
	err := r.db.SelectContext(ctx, &notifications, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// Create inserts a standalone notification row. Order-creation notifications
// go through the order transaction instead.
func (r *NotificationRepository) Create(ctx context.Context, orderID *int64, message string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (order_id, message) VALUES ($1, $2)",
		orderID, message)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification read. There is no per-admin scoping;
// the feed is a global broadcast.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "UPDATE notifications SET is_read = TRUE")
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
