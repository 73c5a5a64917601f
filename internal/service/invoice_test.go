package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pizza-pixel/ordering-service/internal/models"
)

func TestRenderInvoice(t *testing.T) {
	order := &models.Order{
		ID:            42,
		InvoiceNumber: "INV-42",
		Customer:      "Ada Lovelace",
		CustomerPhone: "021 555 0123",
		Total:         models.Price(17.06),
		Status:        models.OrderStatusPending,
		Time:          time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		OrderItems: []models.OrderLine{
			{Name: "Tiramisu", Qty: 2, UnitPrice: 7.99},
		},
	}

	invoice := RenderInvoice(order)

	assert.Contains(t, invoice, "Invoice: INV-42")
	assert.Contains(t, invoice, "Customer: Ada Lovelace")
	assert.Contains(t, invoice, "Phone: 021 555 0123")
	assert.Contains(t, invoice, "2x Tiramisu")
	assert.Contains(t, invoice, "$15.98") // line total, not unit price
	assert.Contains(t, invoice, "Total: $17.06")
	assert.Contains(t, invoice, "Status: pending")
	assert.Contains(t, invoice, "2026-03-14 18:30:00")
}

func TestRenderInvoice_NoPhone(t *testing.T) {
	order := &models.Order{
		InvoiceNumber: "INV-7",
		Customer:      "Walk-in",
		Status:        models.OrderStatusCompleted,
	}

	invoice := RenderInvoice(order)
	assert.NotContains(t, invoice, "Phone:")
}
