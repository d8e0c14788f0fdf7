package app

import (
	"context"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	"github.com/textileoem/platform/internal/adapter/supabase"
	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
	"github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/usecase"
)

// PlatformFacade is the single application service the HTTP layer talks to.
type PlatformFacade struct {
	orders        *usecase.OrderUseCase
	compliance    *usecase.ComplianceUseCase
	payments      *usecase.PaymentUseCase
	notifications *usecase.NotificationUseCase
	health        *usecase.HealthUseCase
	users         repository.UserRepository
	tokens        auth.Strategy
	supabase      supabase.Verifier
}

// NewPlatformFacade constructs PlatformFacade.
func NewPlatformFacade(
	orders *usecase.OrderUseCase,
	compliance *usecase.ComplianceUseCase,
	payments *usecase.PaymentUseCase,
	notifications *usecase.NotificationUseCase,
	health *usecase.HealthUseCase,
	users repository.UserRepository,
	tokens auth.Strategy,
	verifier supabase.Verifier,
) *PlatformFacade {
	return &PlatformFacade{
		orders:        orders,
		compliance:    compliance,
		payments:      payments,
		notifications: notifications,
		health:        health,
		users:         users,
		tokens:        tokens,
		supabase:      verifier,
	}
}

// ResolveIdentity verifies a self-issued bearer token and loads the account
// behind it. Deactivated accounts are rejected.
func (f *PlatformFacade) ResolveIdentity(ctx context.Context, token string) (*auth.Identity, error) {
	claims, err := f.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return f.loadIdentity(ctx, claims.Subject)
}

// ResolveSupabaseIdentity verifies a hosted-provider token against the
// provider's user endpoint and loads the local account row.
func (f *PlatformFacade) ResolveSupabaseIdentity(ctx context.Context, token string) (*auth.Identity, error) {
	userID, err := f.supabase.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return f.loadIdentity(ctx, userID)
}

func (f *PlatformFacade) loadIdentity(ctx context.Context, userID string) (*auth.Identity, error) {
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, domainErrors.Unauthorized("Account is deactivated")
	}
	return &auth.Identity{ID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}

// IssueToken mints a self-issued bearer token for the given account.
func (f *PlatformFacade) IssueToken(identity auth.Identity) (string, error) {
	return f.tokens.IssueToken(auth.TokenClaims{Subject: identity.ID, Email: identity.Email, Role: identity.Role})
}

func (f *PlatformFacade) CreateOrder(ctx context.Context, userID string, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Create(ctx, userID, draft)
}

func (f *PlatformFacade) Order(ctx context.Context, userID, id string) (*model.Order, error) {
	return f.orders.Get(ctx, userID, id)
}

func (f *PlatformFacade) Orders(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
	return f.orders.List(ctx, userID, filter)
}

func (f *PlatformFacade) UpdateOrder(ctx context.Context, userID, id string, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, userID, id, patch)
}

func (f *PlatformFacade) DeleteOrder(ctx context.Context, userID, id string) error {
	return f.orders.Delete(ctx, userID, id)
}

func (f *PlatformFacade) OrderStats(ctx context.Context, userID string) (*model.OrderStats, error) {
	return f.orders.Stats(ctx, userID)
}

func (f *PlatformFacade) CreateComplianceItem(ctx context.Context, userID string, draft model.ComplianceDraft) (*model.ComplianceItem, error) {
	return f.compliance.Create(ctx, userID, draft)
}

func (f *PlatformFacade) ComplianceItem(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error) {
	return f.compliance.Get(ctx, userID, id)
}

func (f *PlatformFacade) ComplianceItems(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error) {
	return f.compliance.List(ctx, userID, filter)
}

func (f *PlatformFacade) UpdateComplianceItem(ctx context.Context, userID string, id int64, patch model.CompliancePatch) (*model.ComplianceItem, error) {
	return f.compliance.Update(ctx, userID, id, patch)
}

func (f *PlatformFacade) DeleteComplianceItem(ctx context.Context, userID string, id int64) error {
	return f.compliance.Delete(ctx, userID, id)
}

func (f *PlatformFacade) ComplianceStats(ctx context.Context, userID string) (*model.ComplianceStats, error) {
	return f.compliance.Stats(ctx, userID)
}

func (f *PlatformFacade) UpcomingCompliance(ctx context.Context, userID string, days int) ([]model.ComplianceItem, error) {
	return f.compliance.Upcoming(ctx, userID, days)
}

func (f *PlatformFacade) CreatePaymentOrder(ctx context.Context, userID string, draft model.PaymentDraft) (*razorpay.Order, *model.Payment, error) {
	return f.payments.CreateOrder(ctx, userID, draft)
}

func (f *PlatformFacade) VerifyPaymentWebhook(ctx context.Context, v usecase.WebhookVerification) (*razorpay.PaymentDetails, *model.Payment, error) {
	return f.payments.VerifyWebhook(ctx, v)
}

func (f *PlatformFacade) RefundPayment(ctx context.Context, userID, razorpayPaymentID string, amount *int64) (*razorpay.RefundDetails, error) {
	return f.payments.Refund(ctx, userID, razorpayPaymentID, amount)
}

func (f *PlatformFacade) Payment(ctx context.Context, userID, id string) (*model.Payment, error) {
	return f.payments.Get(ctx, userID, id)
}

func (f *PlatformFacade) Payments(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error) {
	return f.payments.List(ctx, userID, filter)
}

func (f *PlatformFacade) PaymentStats(ctx context.Context, userID string) (*model.PaymentStats, error) {
	return f.payments.Stats(ctx, userID)
}

func (f *PlatformFacade) SendWhatsApp(ctx context.Context, userID, phone, message string, orderID *string) (*usecase.SendResult, error) {
	return f.notifications.SendWhatsApp(ctx, userID, phone, message, orderID)
}

func (f *PlatformFacade) SendOrderConfirmation(ctx context.Context, userID, orderID, phone string) (*usecase.SendResult, error) {
	return f.notifications.SendOrderConfirmation(ctx, userID, orderID, phone)
}

func (f *PlatformFacade) SendOrderStatusUpdate(ctx context.Context, userID, orderID, phone string) (*usecase.SendResult, error) {
	return f.notifications.SendOrderStatusUpdate(ctx, userID, orderID, phone)
}

func (f *PlatformFacade) SendComplianceAlert(ctx context.Context, userID string, complianceID int64, phone string) (*usecase.SendResult, error) {
	return f.notifications.SendComplianceAlert(ctx, userID, complianceID, phone)
}

func (f *PlatformFacade) Notifications(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error) {
	return f.notifications.List(ctx, userID, filter)
}

func (f *PlatformFacade) NotificationStats(ctx context.Context, userID string) (*model.NotificationStats, error) {
	return f.notifications.Stats(ctx, userID)
}

func (f *PlatformFacade) Health(ctx context.Context) *usecase.HealthStatus {
	return f.health.Check(ctx)
}

func (f *PlatformFacade) DetailedHealth(ctx context.Context) *usecase.DetailedHealthStatus {
	return f.health.CheckDetailed(ctx)
}
