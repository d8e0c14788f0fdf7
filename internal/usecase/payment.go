package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

// WebhookVerification carries the provider callback fields.
type WebhookVerification struct {
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
}

// PaymentUseCase encapsulates the payment provider lifecycle: order
// creation, webhook verification and refunds.
type PaymentUseCase struct {
	payments      repository.PaymentRepository
	provider      razorpay.Client
	webhookSecret string
	logger        *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase. secret keys the webhook
// signature check.
func NewPaymentUseCase(payments repository.PaymentRepository, provider razorpay.Client, secret string, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, provider: provider, webhookSecret: secret, logger: logger}
}

// CreateOrder registers a payment order with the provider first, then mirrors
// it locally in status created. The local write is best-effort: the provider
// order survives a failed insert and is returned regardless.
func (u *PaymentUseCase) CreateOrder(ctx context.Context, userID string, draft model.PaymentDraft) (*razorpay.Order, *model.Payment, error) {
	now := time.Now().UTC()
	currency := draft.Currency
	if currency == "" {
		currency = "INR"
	}

	notes := map[string]string{"user_id": userID}
	if draft.OrderID != nil {
		notes["order_id"] = *draft.OrderID
	}
	for k, v := range draft.Notes {
		notes[k] = v
	}

	order, err := u.provider.CreateOrder(ctx, razorpay.CreateOrderRequest{
		Amount:   draft.MinorUnits(),
		Currency: currency,
		Receipt:  model.NewReceiptID(now),
		Notes:    notes,
	})
	if err != nil {
		return nil, nil, domainErrors.Upstream("Failed to create payment order", err)
	}

	record, err := u.payments.Create(ctx, &model.Payment{
		ID:              order.ID,
		UserID:          userID,
		OrderID:         draft.OrderID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		Receipt:         order.Receipt,
		Status:          model.PaymentStatusCreated,
		RazorpayOrderID: order.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		// The provider order exists; surface it without the local mirror.
		u.logger.Error("failed to store payment order",
			slog.String("razorpay_order_id", order.ID),
			slog.Any("error", err),
		)
		record = nil
	}

	u.logger.Info("payment order created",
		slog.String("razorpay_order_id", order.ID),
		slog.String("user_id", userID),
	)
	return order, record, nil
}

// VerifyWebhook validates the provider signature, fetches the authoritative
// payment details and updates the local record to the provider-reported
// status. Signature mismatch is a 400; an unknown order id is a 404.
func (u *PaymentUseCase) VerifyWebhook(ctx context.Context, v WebhookVerification) (*razorpay.PaymentDetails, *model.Payment, error) {
	if !razorpay.VerifySignature(u.webhookSecret, v.RazorpayOrderID, v.RazorpayPaymentID, v.RazorpaySignature) {
		u.logger.Warn("payment signature verification failed",
			slog.String("razorpay_order_id", v.RazorpayOrderID),
		)
		return nil, nil, domainErrors.BadRequest("Payment verification failed")
	}

	details, err := u.provider.FetchPayment(ctx, v.RazorpayPaymentID)
	if err != nil {
		return nil, nil, domainErrors.Upstream("Failed to fetch payment details", err)
	}

	record, err := u.payments.GetByProviderOrderID(ctx, v.RazorpayOrderID)
	if err != nil {
		return nil, nil, domainErrors.NotFound("Payment record not found")
	}

	status := model.PaymentStatus(details.Status)
	updated, err := u.payments.Update(ctx, record.ID, repository.PaymentUpdate{
		Status:            &status,
		RazorpayPaymentID: &v.RazorpayPaymentID,
		PaymentMethod:     &details.Method,
	}, time.Now().UTC())
	if err != nil {
		return nil, nil, domainErrors.Upstream("Failed to update payment record", err)
	}

	u.logger.Info("payment verified",
		slog.String("razorpay_payment_id", v.RazorpayPaymentID),
		slog.String("status", details.Status),
	)
	return details, updated, nil
}

// Refund issues a provider refund for a captured payment and moves the local
// record to the terminal refunded status. amount is in minor units; nil
// refunds the full amount.
func (u *PaymentUseCase) Refund(ctx context.Context, userID, razorpayPaymentID string, amount *int64) (*razorpay.RefundDetails, error) {
	payment, err := u.payments.GetByProviderPaymentID(ctx, userID, razorpayPaymentID)
	if err != nil {
		return nil, err
	}
	if !payment.Refundable() {
		return nil, domainErrors.BadRequest("Only captured payments can be refunded")
	}

	refund, err := u.provider.Refund(ctx, razorpayPaymentID, amount)
	if err != nil {
		return nil, domainErrors.Upstream("Failed to process refund", err)
	}

	status := model.PaymentStatusRefunded
	if _, err := u.payments.Update(ctx, payment.ID, repository.PaymentUpdate{
		Status:       &status,
		RefundID:     &refund.ID,
		RefundAmount: &refund.Amount,
	}, time.Now().UTC()); err != nil {
		// The provider refund went through; log and keep the response.
		u.logger.Error("failed to update payment record after refund",
			slog.String("payment_id", payment.ID),
			slog.Any("error", err),
		)
	}

	u.logger.Info("refund processed",
		slog.String("razorpay_payment_id", razorpayPaymentID),
		slog.String("refund_id", refund.ID),
	)
	return refund, nil
}

// Get returns a single owned payment record.
func (u *PaymentUseCase) Get(ctx context.Context, userID, id string) (*model.Payment, error) {
	return u.payments.GetByID(ctx, userID, id)
}

// List returns a page of owned payments, newest first, with the total count.
func (u *PaymentUseCase) List(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error) {
	return u.payments.List(ctx, userID, filter)
}

// Stats aggregates the user's payments; amounts are minor units.
func (u *PaymentUseCase) Stats(ctx context.Context, userID string) (*model.PaymentStats, error) {
	return u.payments.Stats(ctx, userID, time.Now().UTC())
}
