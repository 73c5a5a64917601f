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

// ContactService handles the contact form and admin inbox
type ContactService struct {
	repos *repository.Repositories
	hub   *websockets.Hub
}

// NewContactService creates a new contact service
func NewContactService(repos *repository.Repositories, hub *websockets.Hub) *ContactService {
	return &ContactService{
		repos: repos,
		hub:   hub,
	}
}

// Submit stores an inbound message and raises a notification so the admin
// bell updates on the next poll (or immediately over the socket).
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	created, err := s.repos.Contact.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New message from %s", req.Name)
	if err := s.repos.Notification.Create(ctx, nil, message); err != nil {
		return nil, err
	}

	s.hub.Publish(websockets.EventNotificationNew, map[string]interface{}{
		"message": message,
	})

	return created, nil
}

// List retrieves all messages for the admin inbox
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repos.Contact.List(ctx)
}

// ListByEmail retrieves the messages one customer submitted
func (s *ContactService) ListByEmail(ctx context.Context, email string) ([]models.ContactMessage, error) {
	return s.repos.Contact.ListByEmail(ctx, email)
}

// Reply records the admin reply on a message
func (s *ContactService) Reply(ctx context.Context, id int64, reply string) error {
	err := s.repos.Contact.Reply(ctx, id, reply)
	if errors.Is(err, repository.ErrNotFound) {
		return api.NotFound("Message not found")
	}
	return err
}

// MarkRead marks a single message read
func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	err := s.repos.Contact.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return api.NotFound("Message not found")
	}
	return err
}
