package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus follows the provider's lifecycle: created -> captured|failed,
// captured -> refunded (terminal).
type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment mirrors a provider payment order. Amounts are stored in minor
// currency units (paise for INR), matching the provider's wire format.
type Payment struct {
	ID                string
	UserID            string
	OrderID           *string
	Amount            int64
	Currency          string
	Receipt           string
	Status            PaymentStatus
	RazorpayOrderID   string
	RazorpayPaymentID *string
	PaymentMethod     *string
	RefundID          *string
	RefundAmount      *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Refundable reports whether a refund may be issued. The transition out of
// captured is terminal; a second refund on the same payment is rejected.
func (p *Payment) Refundable() bool {
	return p.Status == PaymentStatusCaptured
}

// PaymentDraft is the validated input for payment order creation. Amount is
// in major currency units and converted to minor units at the provider edge.
type PaymentDraft struct {
	Amount   decimal.Decimal
	Currency string
	OrderID  *string
	Notes    map[string]string
}

// MinorUnits converts the draft amount to the provider's integer minor units.
func (d PaymentDraft) MinorUnits() int64 {
	return d.Amount.Mul(decimal.NewFromInt(100)).IntPart()
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	Status string
	Page   int
	Limit  int
}

// PaymentStats aggregates a user's payments. Amounts are minor units.
type PaymentStats struct {
	Total           int   `json:"total"`
	TotalAmount     int64 `json:"total_amount"`
	Captured        int   `json:"captured"`
	Failed          int   `json:"failed"`
	Refunded        int   `json:"refunded"`
	ThisMonth       int   `json:"this_month"`
	ThisMonthAmount int64 `json:"this_month_amount"`
}
