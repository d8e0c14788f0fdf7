package test

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/usecase"
)

// AuthFacadeStub mints deterministic tokens for handler tests.
type AuthFacadeStub struct {
	IssueFn func(auth.Identity) (string, error)
}

// IssueToken delegates to the provided function or returns a fixed token.
func (s AuthFacadeStub) IssueToken(identity auth.Identity) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(identity)
	}
	return "token-stub", nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn func(context.Context, string, model.OrderDraft) (*model.Order, error)
	GetFn    func(context.Context, string, string) (*model.Order, error)
	ListFn   func(context.Context, string, model.OrderFilter) ([]model.Order, int, error)
	UpdateFn func(context.Context, string, string, model.OrderPatch) (*model.Order, error)
	DeleteFn func(context.Context, string, string) error
	StatsFn  func(context.Context, string) (*model.OrderStats, error)
}

// CreateOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID string, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, draft)
	}
	return &model.Order{
		ID:             "ord-1",
		UserID:         userID,
		Client:         draft.Client,
		Product:        draft.Product,
		Quantity:       draft.Quantity,
		Specifications: map[string]any{},
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Unix(0, 0).UTC(),
		UpdatedAt:      time.Unix(0, 0).UTC(),
	}, nil
}

// Order returns the configured order or a minimal default.
func (s OrderFacadeStub) Order(ctx context.Context, userID, id string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.Order{ID: id, UserID: userID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders for the given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, filter)
	}
	return []model.Order{{ID: "ord-1", UserID: userID}}, 1, nil
}

// UpdateOrder executes the configured update handler.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, userID, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, patch)
	}
	return &model.Order{ID: id, UserID: userID}, nil
}

// DeleteOrder executes the configured delete handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, userID, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// OrderStats returns stored aggregates or empty data.
func (s OrderFacadeStub) OrderStats(ctx context.Context, userID string) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, userID)
	}
	return &model.OrderStats{}, nil
}

// ComplianceFacadeStub provides controllable behaviour for compliance endpoints.
type ComplianceFacadeStub struct {
	CreateFn   func(context.Context, string, model.ComplianceDraft) (*model.ComplianceItem, error)
	GetFn      func(context.Context, string, int64) (*model.ComplianceItem, error)
	ListFn     func(context.Context, string, model.ComplianceFilter) ([]model.ComplianceItem, int, error)
	UpdateFn   func(context.Context, string, int64, model.CompliancePatch) (*model.ComplianceItem, error)
	DeleteFn   func(context.Context, string, int64) error
	StatsFn    func(context.Context, string) (*model.ComplianceStats, error)
	UpcomingFn func(context.Context, string, int) ([]model.ComplianceItem, error)
}

// CreateComplianceItem delegates to the provided function or echoes the draft.
func (s ComplianceFacadeStub) CreateComplianceItem(ctx context.Context, userID string, draft model.ComplianceDraft) (*model.ComplianceItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, draft)
	}
	return &model.ComplianceItem{
		ID:       1,
		UserID:   userID,
		Title:    draft.Title,
		Type:     draft.Type,
		DueDate:  draft.DueDate,
		Priority: draft.Priority,
		Status:   model.ComplianceStatusPending,
	}, nil
}

// ComplianceItem returns the configured item or a minimal default.
func (s ComplianceFacadeStub) ComplianceItem(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.ComplianceItem{ID: id, UserID: userID}, nil
}

// ComplianceItems returns predefined items for the given user.
func (s ComplianceFacadeStub) ComplianceItems(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, filter)
	}
	return []model.ComplianceItem{{ID: 1, UserID: userID}}, 1, nil
}

// UpdateComplianceItem executes the configured update handler.
func (s ComplianceFacadeStub) UpdateComplianceItem(ctx context.Context, userID string, id int64, patch model.CompliancePatch) (*model.ComplianceItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, patch)
	}
	return &model.ComplianceItem{ID: id, UserID: userID}, nil
}

// DeleteComplianceItem executes the configured delete handler.
func (s ComplianceFacadeStub) DeleteComplianceItem(ctx context.Context, userID string, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return nil
}

// ComplianceStats returns stored aggregates or empty data.
func (s ComplianceFacadeStub) ComplianceStats(ctx context.Context, userID string) (*model.ComplianceStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, userID)
	}
	return &model.ComplianceStats{}, nil
}

// UpcomingCompliance returns items inside the requested horizon.
func (s ComplianceFacadeStub) UpcomingCompliance(ctx context.Context, userID string, days int) ([]model.ComplianceItem, error) {
	if s.UpcomingFn != nil {
		return s.UpcomingFn(ctx, userID, days)
	}
	return []model.ComplianceItem{}, nil
}

// PaymentFacadeStub simulates payment provider operations.
type PaymentFacadeStub struct {
	CreateOrderFn func(context.Context, string, model.PaymentDraft) (*razorpay.Order, *model.Payment, error)
	VerifyFn      func(context.Context, usecase.WebhookVerification) (*razorpay.PaymentDetails, *model.Payment, error)
	RefundFn      func(context.Context, string, string, *int64) (*razorpay.RefundDetails, error)
	GetFn         func(context.Context, string, string) (*model.Payment, error)
	ListFn        func(context.Context, string, model.PaymentFilter) ([]model.Payment, int, error)
	StatsFn       func(context.Context, string) (*model.PaymentStats, error)
}

// CreatePaymentOrder delegates to the provided function or fabricates a pair.
func (s PaymentFacadeStub) CreatePaymentOrder(ctx context.Context, userID string, draft model.PaymentDraft) (*razorpay.Order, *model.Payment, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, draft)
	}
	order := &razorpay.Order{ID: "order_stub", Amount: 100, Currency: "INR", Status: "created"}
	return order, &model.Payment{ID: "pay-1", UserID: userID, RazorpayOrderID: order.ID, Status: model.PaymentStatusCreated}, nil
}

// VerifyPaymentWebhook executes the configured verification handler.
func (s PaymentFacadeStub) VerifyPaymentWebhook(ctx context.Context, v usecase.WebhookVerification) (*razorpay.PaymentDetails, *model.Payment, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, v)
	}
	return &razorpay.PaymentDetails{ID: v.RazorpayPaymentID, Status: "captured"},
		&model.Payment{ID: "pay-1", RazorpayOrderID: v.RazorpayOrderID, Status: model.PaymentStatusCaptured}, nil
}

// RefundPayment executes the configured refund handler.
func (s PaymentFacadeStub) RefundPayment(ctx context.Context, userID, razorpayPaymentID string, amount *int64) (*razorpay.RefundDetails, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, userID, razorpayPaymentID, amount)
	}
	return &razorpay.RefundDetails{ID: "rfnd_stub", Status: "processed"}, nil
}

// Payment returns the configured record or a minimal default.
func (s PaymentFacadeStub) Payment(ctx context.Context, userID, id string) (*model.Payment, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.Payment{ID: id, UserID: userID}, nil
}

// Payments returns predefined records for the given user.
func (s PaymentFacadeStub) Payments(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, filter)
	}
	return []model.Payment{{ID: "pay-1", UserID: userID}}, 1, nil
}

// PaymentStats returns stored aggregates or empty data.
func (s PaymentFacadeStub) PaymentStats(ctx context.Context, userID string) (*model.PaymentStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, userID)
	}
	return &model.PaymentStats{}, nil
}

// NotificationFacadeStub simulates messaging operations.
type NotificationFacadeStub struct {
	SendFn            func(context.Context, string, string, string, *string) (*usecase.SendResult, error)
	ConfirmationFn    func(context.Context, string, string, string) (*usecase.SendResult, error)
	StatusUpdateFn    func(context.Context, string, string, string) (*usecase.SendResult, error)
	ComplianceAlertFn func(context.Context, string, int64, string) (*usecase.SendResult, error)
	ListFn            func(context.Context, string, model.NotificationFilter) ([]model.Notification, int, error)
	StatsFn           func(context.Context, string) (*model.NotificationStats, error)
}

// SendWhatsApp executes the configured handler or reports success.
func (s NotificationFacadeStub) SendWhatsApp(ctx context.Context, userID, phone, message string, orderID *string) (*usecase.SendResult, error) {
	if s.SendFn != nil {
		return s.SendFn(ctx, userID, phone, message, orderID)
	}
	return &usecase.SendResult{MessageID: "SM_stub", Status: "sent"}, nil
}

// SendOrderConfirmation executes the configured handler or reports success.
func (s NotificationFacadeStub) SendOrderConfirmation(ctx context.Context, userID, orderID, phone string) (*usecase.SendResult, error) {
	if s.ConfirmationFn != nil {
		return s.ConfirmationFn(ctx, userID, orderID, phone)
	}
	return &usecase.SendResult{MessageID: "SM_stub", Status: "sent"}, nil
}

// SendOrderStatusUpdate executes the configured handler or reports success.
func (s NotificationFacadeStub) SendOrderStatusUpdate(ctx context.Context, userID, orderID, phone string) (*usecase.SendResult, error) {
	if s.StatusUpdateFn != nil {
		return s.StatusUpdateFn(ctx, userID, orderID, phone)
	}
	return &usecase.SendResult{MessageID: "SM_stub", Status: "sent"}, nil
}

// SendComplianceAlert executes the configured handler or reports success.
func (s NotificationFacadeStub) SendComplianceAlert(ctx context.Context, userID string, complianceID int64, phone string) (*usecase.SendResult, error) {
	if s.ComplianceAlertFn != nil {
		return s.ComplianceAlertFn(ctx, userID, complianceID, phone)
	}
	return &usecase.SendResult{MessageID: "SM_stub", Status: "sent"}, nil
}

// Notifications returns the predefined delivery log.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, filter)
	}
	return []model.Notification{}, 0, nil
}

// NotificationStats returns stored aggregates or empty data.
func (s NotificationFacadeStub) NotificationStats(ctx context.Context, userID string) (*model.NotificationStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, userID)
	}
	return &model.NotificationStats{}, nil
}

// PlatformFacadeStub aggregates every facade stub plus bearer resolution, so
// a full router can be assembled in tests.
type PlatformFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ComplianceFacadeStub
	PaymentFacadeStub
	NotificationFacadeStub
	HealthFacadeStub

	ResolveFn         func(ctx context.Context, token string) (*auth.Identity, error)
	ResolveSupabaseFn func(ctx context.Context, token string) (*auth.Identity, error)
}

// ResolveIdentity delegates to the provided function or accepts any token.
func (s PlatformFacadeStub) ResolveIdentity(ctx context.Context, token string) (*auth.Identity, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return &auth.Identity{ID: "user-1", Role: "user"}, nil
}

// ResolveSupabaseIdentity delegates to the provided function or accepts any token.
func (s PlatformFacadeStub) ResolveSupabaseIdentity(ctx context.Context, token string) (*auth.Identity, error) {
	if s.ResolveSupabaseFn != nil {
		return s.ResolveSupabaseFn(ctx, token)
	}
	return &auth.Identity{ID: "user-1", Role: "user"}, nil
}

// HealthFacadeStub reports configurable health states.
type HealthFacadeStub struct {
	HealthFn   func(context.Context) *usecase.HealthStatus
	DetailedFn func(context.Context) *usecase.DetailedHealthStatus
}

// Health returns the configured status or a healthy default.
func (s HealthFacadeStub) Health(ctx context.Context) *usecase.HealthStatus {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return &usecase.HealthStatus{Status: usecase.HealthOK}
}

// DetailedHealth returns the configured status or a healthy default.
func (s HealthFacadeStub) DetailedHealth(ctx context.Context) *usecase.DetailedHealthStatus {
	if s.DetailedFn != nil {
		return s.DetailedFn(ctx)
	}
	return &usecase.DetailedHealthStatus{Status: usecase.HealthOK}
}
