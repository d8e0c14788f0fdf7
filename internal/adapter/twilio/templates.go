package twilio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/textileoem/platform/internal/domain/model"
)

// OrderConfirmation composes the message sent when a new order is placed.
func OrderConfirmation(order *model.Order) string {
	var b strings.Builder
	b.WriteString("🎉 *Order Confirmed!*\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Client: %s\n", order.Client)
	fmt.Fprintf(&b, "Product: %s\n", order.Product)
	fmt.Fprintf(&b, "Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)
	b.WriteString("We'll keep you updated on your order progress. Thank you for choosing TextileOEM!")
	return b.String()
}

// OrderStatusUpdate composes the message sent when an order changes status.
func OrderStatusUpdate(order *model.Order) string {
	var b strings.Builder
	b.WriteString("📦 *Order Status Update*\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "New Status: %s\n", order.Status)
	fmt.Fprintf(&b, "Progress: %d%%\n\n", order.Progress)
	if order.Status == model.OrderStatusCompleted {
		b.WriteString("🎉 Your order has been completed and is ready for delivery!")
	} else {
		b.WriteString("We'll continue to keep you updated.")
	}
	return b.String()
}

// ComplianceAlert composes the message sent for high and critical
// compliance items.
func ComplianceAlert(item *model.ComplianceItem) string {
	var b strings.Builder
	b.WriteString("⚠️ *Compliance Alert*\n\n")
	fmt.Fprintf(&b, "%s\n", item.Title)
	fmt.Fprintf(&b, "Due Date: %s\n", item.DueDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Priority: %s\n\n", item.Priority)
	b.WriteString("Please review and take necessary action. Contact us if you need assistance.")
	return b.String()
}

// PaymentConfirmation composes the message sent after a payment is captured.
func PaymentConfirmation(payment *model.Payment) string {
	amount := decimal.NewFromInt(payment.Amount).Div(decimal.NewFromInt(100))
	var b strings.Builder
	b.WriteString("💳 *Payment Confirmed*\n\n")
	fmt.Fprintf(&b, "Payment ID: %s\n", payment.ID)
	fmt.Fprintf(&b, "Amount: ₹%s\n", amount.StringFixed(2))
	fmt.Fprintf(&b, "Status: %s\n", payment.Status)
	fmt.Fprintf(&b, "Date: %s\n\n", payment.CreatedAt.Format("2006-01-02"))
	b.WriteString("Thank you for your payment!")
	return b.String()
}
