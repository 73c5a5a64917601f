package models

import "time"

// Notification is an admin-facing event row. There is no recipient column;
// every admin session sees the same feed.
type Notification struct {
	ID      int64     `db:"id" json:"id"`
	OrderID *int64    `db:"order_id" json:"orderId"`
	Message string    `db:"message" json:"message"`
	Read    bool      `db:"is_read" json:"read"`
	Time    time.Time `db:"created_at" json:"time"`
}
