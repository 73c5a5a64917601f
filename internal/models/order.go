package models

import "time"

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the three known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status allows no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order represents an order header with its line items attached.
type Order struct {
	ID            int64       `db:"id" json:"id"`
	InvoiceNumber string      `db:"invoice_number" json:"invoiceNumber"`
	Customer      string      `db:"customer_name" json:"customer"`
	CustomerPhone string      `db:"customer_phone" json:"customerPhone"`
	Total         Price       `db:"total_amount" json:"total"`
	Status        OrderStatus `db:"status" json:"status"`
	Time          time.Time   `db:"created_at" json:"time"`

	// Not stored directly in the database
	OrderItems []OrderLine `db:"-" json:"orderItems"`
	Items      []string    `db:"-" json:"items"`
}

// OrderLine is one line item of an order. The name is denormalized at insert
// time so historical orders survive menu edits and deletions.
type OrderLine struct {
	Name      string `db:"name" json:"name"`
	Qty       int    `db:"quantity" json:"qty"`
	UnitPrice Price  `db:"unit_price" json:"unitPrice"`
}

// ItemNames returns the line item names in order.
func (o *Order) ItemNames() []string {
	names := make([]string, 0, len(o.OrderItems))
	for _, line := range o.OrderItems {
		names = append(names, line.Name)
	}
	return names
}

// OrderRequest is used for order creation, from both customer checkout and
// the admin billing form.
type OrderRequest struct {
	Customer      string             `json:"customer" validate:"required,min=1,max=150"`
	CustomerPhone string             `json:"customerPhone"`
	OrderItems    []OrderLineRequest `json:"orderItems" validate:"required,min=1,dive"`
	Total         *Price             `json:"total" validate:"required"`
	Status        OrderStatus        `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

// OrderLineRequest is one submitted line item.
type OrderLineRequest struct {
	Name      string `json:"name" validate:"required"`
	Qty       int    `json:"qty" validate:"required,min=1"`
	UnitPrice Price  `json:"unitPrice"`
}

// OrderResponse is a created order plus the names that could not be resolved
// against the catalog. Unresolved lines are still persisted, just without a
// catalog reference.
type OrderResponse struct {
	Order
	Unresolved []string `json:"unresolved,omitempty"`
}

// StatusUpdateRequest is used for PATCH /orders/{id}/status
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}
