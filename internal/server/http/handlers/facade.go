package handlers

import (
	"context"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/usecase"
)

// TokenIssuer mints self-issued tokens for an already-verified identity.
type TokenIssuer interface {
	IssueToken(identity auth.Identity) (string, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID string, draft model.OrderDraft) (*model.Order, error)
	Order(ctx context.Context, userID, id string) (*model.Order, error)
	Orders(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error)
	UpdateOrder(ctx context.Context, userID, id string, patch model.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, userID, id string) error
	OrderStats(ctx context.Context, userID string) (*model.OrderStats, error)
}

// ComplianceFacade encapsulates compliance tracking operations.
type ComplianceFacade interface {
	CreateComplianceItem(ctx context.Context, userID string, draft model.ComplianceDraft) (*model.ComplianceItem, error)
	ComplianceItem(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error)
	ComplianceItems(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error)
	UpdateComplianceItem(ctx context.Context, userID string, id int64, patch model.CompliancePatch) (*model.ComplianceItem, error)
	DeleteComplianceItem(ctx context.Context, userID string, id int64) error
	ComplianceStats(ctx context.Context, userID string) (*model.ComplianceStats, error)
	UpcomingCompliance(ctx context.Context, userID string, days int) ([]model.ComplianceItem, error)
}

// PaymentFacade encapsulates the payment provider lifecycle.
type PaymentFacade interface {
	CreatePaymentOrder(ctx context.Context, userID string, draft model.PaymentDraft) (*razorpay.Order, *model.Payment, error)
	VerifyPaymentWebhook(ctx context.Context, v usecase.WebhookVerification) (*razorpay.PaymentDetails, *model.Payment, error)
	RefundPayment(ctx context.Context, userID, razorpayPaymentID string, amount *int64) (*razorpay.RefundDetails, error)
	Payment(ctx context.Context, userID, id string) (*model.Payment, error)
	Payments(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error)
	PaymentStats(ctx context.Context, userID string) (*model.PaymentStats, error)
}

// NotificationFacade encapsulates messaging operations.
type NotificationFacade interface {
	SendWhatsApp(ctx context.Context, userID, phone, message string, orderID *string) (*usecase.SendResult, error)
	SendOrderConfirmation(ctx context.Context, userID, orderID, phone string) (*usecase.SendResult, error)
	SendOrderStatusUpdate(ctx context.Context, userID, orderID, phone string) (*usecase.SendResult, error)
	SendComplianceAlert(ctx context.Context, userID string, complianceID int64, phone string) (*usecase.SendResult, error)
	Notifications(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error)
	NotificationStats(ctx context.Context, userID string) (*model.NotificationStats, error)
}

// HealthFacade encapsulates health reporting.
type HealthFacade interface {
	Health(ctx context.Context) *usecase.HealthStatus
	DetailedHealth(ctx context.Context) *usecase.DetailedHealthStatus
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	TokenIssuer
	OrderFacade
	ComplianceFacade
	PaymentFacade
	NotificationFacade
	HealthFacade
}
