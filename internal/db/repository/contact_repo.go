package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pizza-pixel/ordering-service/internal/models"
)

// ContactRepository handles contact message data access
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores an inbound contact message.
func (r *ContactRepository) Create(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, message, is_read, reply, created_at
	`

	var created models.ContactMessage
	err := r.db.GetContext(ctx, &created, query, req.Name, req.Email, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return &created, nil
}

// List retrieves all contact messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, is_read, reply, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	messages := []models.ContactMessage{}
	err := r.db.SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return messages, nil
}

// ListByEmail retrieves the messages submitted under one email address.
func (r *ContactRepository) ListByEmail(ctx context.Context, email string) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, is_read, reply, created_at
		FROM contact_messages
		WHERE email = $1
		ORDER BY created_at DESC
	`

	messages := []models.ContactMessage{}
	err := r.db.SelectContext(ctx, &messages, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages by email: %w", err)
	}

	return messages, nil
}

// Reply records the single admin reply and marks the message read.
func (r *ContactRepository) Reply(ctx context.Context, id int64, reply string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contact_messages SET reply = $1, is_read = TRUE WHERE id = $2",
		reply, id)
	if err != nil {
		return fmt.Errorf("failed to reply to contact message: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// MarkRead marks a single message read. Idempotent; marking twice is a no-op.
func (r *ContactRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contact_messages SET is_read = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to mark contact message read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
