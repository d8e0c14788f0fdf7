package model

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// OrderStatus is the production order state machine:
// pending -> in_production -> quality_check -> completed, with cancelled
// reachable from any non-terminal state. Transitions are not enforced on
// update; enum membership is.
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusQualityCheck OrderStatus = "quality_check"
	OrderStatusCompleted    OrderStatus = "completed"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

// Order is a production order owned by a single user.
type Order struct {
	ID             string
	UserID         string
	Client         string
	Product        string
	Quantity       int
	Specifications map[string]any
	DeliveryDate   *time.Time
	Notes          *string
	Status         OrderStatus
	Progress       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Deletable reports whether the order may still be hard-deleted.
func (o *Order) Deletable() bool {
	return o.Status == OrderStatusPending
}

// OrderDraft is the validated input for order creation.
type OrderDraft struct {
	Client         string
	Product        string
	Quantity       int
	Specifications map[string]any
	DeliveryDate   *time.Time
	Notes          *string
}

// OrderPatch is a partial update. Nil fields are left untouched; present
// fields are applied as-is.
type OrderPatch struct {
	Status       *OrderStatus
	Progress     *int
	Notes        *string
	DeliveryDate *time.Time
}

// Apply merges the patch into the order and refreshes UpdatedAt.
func (p OrderPatch) Apply(o *Order, now time.Time) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Progress != nil {
		o.Progress = *p.Progress
	}
	if p.Notes != nil {
		o.Notes = p.Notes
	}
	if p.DeliveryDate != nil {
		o.DeliveryDate = p.DeliveryDate
	}
	o.UpdatedAt = now
}

// Empty reports whether the patch carries no changes.
func (p OrderPatch) Empty() bool {
	return p.Status == nil && p.Progress == nil && p.Notes == nil && p.DeliveryDate == nil
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status string
	Page   int
	Limit  int
}

// OrderStats aggregates a user's orders by status.
type OrderStats struct {
	Total         int `json:"total"`
	Pending       int `json:"pending"`
	InProduction  int `json:"in_production"`
	QualityCheck  int `json:"quality_check"`
	Completed     int `json:"completed"`
	Cancelled     int `json:"cancelled"`
	TotalQuantity int `json:"total_quantity"`
	ThisMonth     int `json:"this_month"`
}

const idSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderID generates a human-traceable order identifier:
// ORD-<unix millis>-<4 random alphanumerics>.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), randomSuffix(4))
}

// NewReceiptID generates a payment receipt identifier in the same shape.
func NewReceiptID(now time.Time) string {
	return fmt.Sprintf("RCP-%d-%s", now.UnixMilli(), randomSuffix(4))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idSuffixAlphabet[rand.IntN(len(idSuffixAlphabet))]
	}
	return string(b)
}
