package repository

import (
	"github.com/jmoiron/sqlx"
)

// Repositories provides access to all repository instances
type Repositories struct {
	User         *UserRepository
	Catalog      *CatalogRepository
	Order        *OrderRepository
	Notification *NotificationRepository
	Contact      *ContactRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Catalog:      NewCatalogRepository(db),
		Order:        NewOrderRepository(db),
		Notification: NewNotificationRepository(db),
		Contact:      NewContactRepository(db),
	}
}
