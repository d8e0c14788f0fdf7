package repository

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// PaymentUpdate carries the mutable provider-reported payment fields.
type PaymentUpdate struct {
	Status            *model.PaymentStatus
	RazorpayPaymentID *string
	PaymentMethod     *string
	RefundID          *string
	RefundAmount      *int64
}

// PaymentRepository persists provider payment records. Reads are scoped by
// owner except the webhook lookup, which correlates by provider order id.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	GetByID(ctx context.Context, userID, id string) (*model.Payment, error)
	GetByProviderOrderID(ctx context.Context, razorpayOrderID string) (*model.Payment, error)
	GetByProviderPaymentID(ctx context.Context, userID, razorpayPaymentID string) (*model.Payment, error)
	List(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error)
	Update(ctx context.Context, id string, update PaymentUpdate, now time.Time) (*model.Payment, error)
	Stats(ctx context.Context, userID string, now time.Time) (*model.PaymentStats, error)
}
