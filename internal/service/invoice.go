package service

import (
	"fmt"
	"strings"

	"github.com/pizza-pixel/ordering-service/internal/models"
)

// RenderInvoice generates the plain text invoice for an order, the same
// document the billing screen prints.
func RenderInvoice(order *models.Order) string {
	var sb strings.Builder

	sb.WriteString("===============================\n")
	sb.WriteString("         PIZZA PIXEL          \n")
	sb.WriteString("===============================\n\n")

	sb.WriteString(fmt.Sprintf("Invoice: %s\n", order.InvoiceNumber))
	sb.WriteString(fmt.Sprintf("Date: %s\n", order.Time.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Customer: %s\n", order.Customer))
	if order.CustomerPhone != "" {
		sb.WriteString(fmt.Sprintf("Phone: %s\n", order.CustomerPhone))
	}
	sb.WriteString("\n")

	sb.WriteString("Items:\n")
	sb.WriteString("-------------------------------\n")

	for _, line := range order.OrderItems {
		sb.WriteString(fmt.Sprintf("%dx %s\n", line.Qty, line.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", models.Price(float64(line.UnitPrice)*float64(line.Qty))))
	}

	sb.WriteString("-------------------------------\n")
	sb.WriteString(fmt.Sprintf("Total: %s\n", order.Total))
	sb.WriteString(fmt.Sprintf("Status: %s\n", order.Status))
	sb.WriteString("\n")

	sb.WriteString("===============================\n")
	sb.WriteString("         Thank You!           \n")
	sb.WriteString("===============================\n")

	return sb.String()
}
