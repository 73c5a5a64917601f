package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pizza-pixel/ordering-service/internal/models"
)

// OrderRepository handles order data access
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetByID retrieves an order by ID with its line items.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `
		SELECT id, invoice_number, customer_name, customer_phone, total_amount, status, created_at
		FROM orders
		WHERE id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.getOrderLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.OrderItems = lines
	order.Items = order.ItemNames()

	return &order, nil
}

// getOrderLines retrieves line items for an order
func (r *OrderRepository) getOrderLines(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	query := `
		SELECT name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`

	lines := []models.OrderLine{}
	err := r.db.SelectContext(ctx, &lines, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return lines, nil
}

// List retrieves orders newest first with their line items attached.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, invoice_number, customer_name, customer_phone, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT 100
	`

	orders := []models.Order{}
	err := r.db.SelectContext(ctx, &orders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for i := range orders {
		lines, err := r.getOrderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].OrderItems = lines
		orders[i].Items = orders[i].ItemNames()
	}

	return orders, nil
}

// Create creates an order header, its line items, and one notification row
// inside a single transaction. The invoice number is derived from the
// database-assigned id within the same transaction, so labels cannot collide
// under concurrent submissions.
//
// Line names are resolved against the catalog by exact name. Unresolved names
// are persisted with a NULL catalog reference and reported back; the order as
// a whole never fails because a caller typed a free-text name.
func (r *OrderRepository) Create(ctx context.Context, req models.OrderRequest) (*models.Order, []string, error) {
	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Insert the header first; the id it gets assigned is the invoice number.
	var order models.Order
	err = tx.GetContext(
		ctx,
		&order,
		`INSERT INTO orders (customer_name, customer_phone, total_amount, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, invoice_number, customer_name, customer_phone, total_amount, status, created_at`,
		req.Customer,
		req.CustomerPhone,
		*req.Total,
		status,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.InvoiceNumber = fmt.Sprintf("INV-%d", order.ID)
	_, err = tx.ExecContext(ctx,
		"UPDATE orders SET invoice_number = $1 WHERE id = $2",
		order.InvoiceNumber, order.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set invoice number: %w", err)
	}

	var unresolved []string
	order.OrderItems = make([]models.OrderLine, 0, len(req.OrderItems))

	for _, line := range req.OrderItems {
		var menuItemID *int64
		var id int64
		err = tx.GetContext(ctx, &id,
			"SELECT id FROM menu_items WHERE name = $1 LIMIT 1", line.Name)
		switch {
		case err == nil:
			menuItemID = &id
		case errors.Is(err, sql.ErrNoRows):
			unresolved = append(unresolved, line.Name)
			err = nil
		default:
			return nil, nil, fmt.Errorf("failed to resolve menu item %q: %w", line.Name, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)`,
			order.ID, menuItemID, line.Name, line.Qty, line.UnitPrice)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create order item: %w", err)
		}

		order.OrderItems = append(order.OrderItems, models.OrderLine{
			Name:      line.Name,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice,
		})
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO notifications (order_id, message) VALUES ($1, $2)",
		order.ID,
		fmt.Sprintf("New order #%d from %s - %s", order.ID, order.Customer, order.Total))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create notification: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.Items = order.ItemNames()
	return &order, unresolved, nil
}

// UpdateStatus updates an order's status. The WHERE clause only matches rows
// still in pending (or already carrying the requested value, which makes the
// call idempotent), so terminal states cannot be overwritten even under
// concurrent updates.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND (status = 'pending' OR status = $1)
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Either no such order, or the order is in a terminal state.
		var current models.OrderStatus
		err := r.db.GetContext(ctx, &current, "SELECT status FROM orders WHERE id = $1", id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check order status: %w", err)
		}
		return ErrTerminalStatus
	}

	return nil
}

// ErrTerminalStatus is returned when a status update targets an order that is
// already completed or cancelled.
var ErrTerminalStatus = errors.New("order status is terminal")
