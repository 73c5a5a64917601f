package models

import "time"

// ContactMessage is an inbound storefront message with at most one admin
// reply.
type ContactMessage struct {
	ID      int64     `db:"id" json:"id"`
	Name    string    `db:"name" json:"name"`
	Email   string    `db:"email" json:"email"`
	Message string    `db:"message" json:"message"`
	Read    bool      `db:"is_read" json:"read"`
	Reply   *string   `db:"reply" json:"reply"`
	Time    time.Time `db:"created_at" json:"time"`
}

// ContactRequest is used for contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1"`
}

// ReplyRequest is used for the single admin reply on a message
type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,min=1"`
}
