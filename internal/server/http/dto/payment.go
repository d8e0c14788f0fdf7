package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/textileoem/platform/internal/domain/model"
)

// CreatePaymentRequest is the validated body for POST /api/payments/create-order.
// Amount is in major currency units.
type CreatePaymentRequest struct {
	Amount   decimal.Decimal   `json:"amount" binding:"required"`
	Currency string            `json:"currency" binding:"omitempty,oneof=INR USD EUR"`
	OrderID  *string           `json:"order_id"`
	Notes    map[string]string `json:"notes"`
}

// Draft converts the request to the domain input.
func (r CreatePaymentRequest) Draft() model.PaymentDraft {
	return model.PaymentDraft{
		Amount:   r.Amount,
		Currency: r.Currency,
		OrderID:  r.OrderID,
		Notes:    r.Notes,
	}
}

// VerifyPaymentRequest is the provider webhook body.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// RefundRequest is the validated body for POST /api/payments/refund. Amount
// is in minor units; absent refunds the full captured amount.
type RefundRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	Amount    *int64 `json:"amount" binding:"omitempty,min=1"`
}

// PaymentResponse is the wire shape of a payment record. Amounts are minor
// currency units.
type PaymentResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	OrderID           *string   `json:"order_id"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	Receipt           string    `json:"receipt"`
	Status            string    `json:"status"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID *string   `json:"razorpay_payment_id"`
	PaymentMethod     *string   `json:"payment_method"`
	RefundID          *string   `json:"refund_id"`
	RefundAmount      *int64    `json:"refund_amount"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToPaymentResponse maps a domain payment onto the wire shape.
func ToPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		OrderID:           p.OrderID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Receipt:           p.Receipt,
		Status:            string(p.Status),
		RazorpayOrderID:   p.RazorpayOrderID,
		RazorpayPaymentID: p.RazorpayPaymentID,
		PaymentMethod:     p.PaymentMethod,
		RefundID:          p.RefundID,
		RefundAmount:      p.RefundAmount,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPaymentResponses maps a slice, never returning nil.
func ToPaymentResponses(payments []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentResponse(p))
	}
	return out
}

// PaymentListResponse nests a page of payments with pagination metadata.
type PaymentListResponse struct {
	Payments   []PaymentResponse `json:"payments"`
	Pagination Pagination        `json:"pagination"`
}
