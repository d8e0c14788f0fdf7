package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	"github.com/textileoem/platform/internal/adapter/twilio"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type stubOrderRepository struct {
	createFn  func(context.Context, *model.Order) (*model.Order, error)
	getByIDFn func(context.Context, string, string) (*model.Order, error)
	listFn    func(context.Context, string, model.OrderFilter) ([]model.Order, int, error)
	updateFn  func(context.Context, string, string, model.OrderPatch, time.Time) (*model.Order, error)
	deleteFn  func(context.Context, string, string) error
	statsFn   func(context.Context, string, time.Time) (*model.OrderStats, error)
}

func (s stubOrderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	return s.createFn(ctx, order)
}

func (s stubOrderRepository) GetByID(ctx context.Context, userID, id string) (*model.Order, error) {
	return s.getByIDFn(ctx, userID, id)
}

func (s stubOrderRepository) List(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
	return s.listFn(ctx, userID, filter)
}

func (s stubOrderRepository) Update(ctx context.Context, userID, id string, patch model.OrderPatch, now time.Time) (*model.Order, error) {
	return s.updateFn(ctx, userID, id, patch, now)
}

func (s stubOrderRepository) Delete(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

func (s stubOrderRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.OrderStats, error) {
	return s.statsFn(ctx, userID, now)
}

type stubComplianceRepository struct {
	createFn   func(context.Context, *model.ComplianceItem) (*model.ComplianceItem, error)
	getByIDFn  func(context.Context, string, int64) (*model.ComplianceItem, error)
	listFn     func(context.Context, string, model.ComplianceFilter) ([]model.ComplianceItem, int, error)
	updateFn   func(context.Context, string, int64, model.CompliancePatch, time.Time) (*model.ComplianceItem, error)
	deleteFn   func(context.Context, string, int64) error
	statsFn    func(context.Context, string, time.Time) (*model.ComplianceStats, error)
	upcomingFn func(context.Context, string, time.Time) ([]model.ComplianceItem, error)
}

func (s stubComplianceRepository) Create(ctx context.Context, item *model.ComplianceItem) (*model.ComplianceItem, error) {
	return s.createFn(ctx, item)
}

func (s stubComplianceRepository) GetByID(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error) {
	return s.getByIDFn(ctx, userID, id)
}

func (s stubComplianceRepository) List(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error) {
	return s.listFn(ctx, userID, filter)
}

func (s stubComplianceRepository) Update(ctx context.Context, userID string, id int64, patch model.CompliancePatch, now time.Time) (*model.ComplianceItem, error) {
	return s.updateFn(ctx, userID, id, patch, now)
}

func (s stubComplianceRepository) Delete(ctx context.Context, userID string, id int64) error {
	return s.deleteFn(ctx, userID, id)
}

func (s stubComplianceRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.ComplianceStats, error) {
	return s.statsFn(ctx, userID, now)
}

func (s stubComplianceRepository) Upcoming(ctx context.Context, userID string, until time.Time) ([]model.ComplianceItem, error) {
	return s.upcomingFn(ctx, userID, until)
}

type stubPaymentRepository struct {
	createFn             func(context.Context, *model.Payment) (*model.Payment, error)
	getByIDFn            func(context.Context, string, string) (*model.Payment, error)
	getByProviderOrderFn func(context.Context, string) (*model.Payment, error)
	getByProviderPayFn   func(context.Context, string, string) (*model.Payment, error)
	listFn               func(context.Context, string, model.PaymentFilter) ([]model.Payment, int, error)
	updateFn             func(context.Context, string, repository.PaymentUpdate, time.Time) (*model.Payment, error)
	statsFn              func(context.Context, string, time.Time) (*model.PaymentStats, error)
}

func (s stubPaymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	return s.createFn(ctx, payment)
}

func (s stubPaymentRepository) GetByID(ctx context.Context, userID, id string) (*model.Payment, error) {
	return s.getByIDFn(ctx, userID, id)
}

func (s stubPaymentRepository) GetByProviderOrderID(ctx context.Context, razorpayOrderID string) (*model.Payment, error) {
	return s.getByProviderOrderFn(ctx, razorpayOrderID)
}

func (s stubPaymentRepository) GetByProviderPaymentID(ctx context.Context, userID, razorpayPaymentID string) (*model.Payment, error) {
	return s.getByProviderPayFn(ctx, userID, razorpayPaymentID)
}

func (s stubPaymentRepository) List(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error) {
	return s.listFn(ctx, userID, filter)
}

func (s stubPaymentRepository) Update(ctx context.Context, id string, update repository.PaymentUpdate, now time.Time) (*model.Payment, error) {
	return s.updateFn(ctx, id, update, now)
}

func (s stubPaymentRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.PaymentStats, error) {
	return s.statsFn(ctx, userID, now)
}

type stubNotificationRepository struct {
	appendFn func(context.Context, *model.Notification) (*model.Notification, error)
	listFn   func(context.Context, string, model.NotificationFilter) ([]model.Notification, int, error)
	statsFn  func(context.Context, string, time.Time) (*model.NotificationStats, error)
}

func (s stubNotificationRepository) Append(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	return s.appendFn(ctx, n)
}

func (s stubNotificationRepository) List(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error) {
	return s.listFn(ctx, userID, filter)
}

func (s stubNotificationRepository) Stats(ctx context.Context, userID string, now time.Time) (*model.NotificationStats, error) {
	return s.statsFn(ctx, userID, now)
}

type stubRazorpayClient struct {
	createOrderFn  func(context.Context, razorpay.CreateOrderRequest) (*razorpay.Order, error)
	fetchPaymentFn func(context.Context, string) (*razorpay.PaymentDetails, error)
	refundFn       func(context.Context, string, *int64) (*razorpay.RefundDetails, error)
}

func (s stubRazorpayClient) CreateOrder(ctx context.Context, req razorpay.CreateOrderRequest) (*razorpay.Order, error) {
	return s.createOrderFn(ctx, req)
}

func (s stubRazorpayClient) FetchPayment(ctx context.Context, paymentID string) (*razorpay.PaymentDetails, error) {
	return s.fetchPaymentFn(ctx, paymentID)
}

func (s stubRazorpayClient) Refund(ctx context.Context, paymentID string, amount *int64) (*razorpay.RefundDetails, error) {
	return s.refundFn(ctx, paymentID, amount)
}

type stubSender struct {
	sendFn func(context.Context, string, string) (*twilio.Message, error)
}

func (s stubSender) SendWhatsApp(ctx context.Context, to, body string) (*twilio.Message, error) {
	return s.sendFn(ctx, to, body)
}

type stubNotifier struct {
	orderFn      func(context.Context, *model.Order)
	complianceFn func(context.Context, *model.ComplianceItem)
}

func (s stubNotifier) NotifyOrderStatus(ctx context.Context, order *model.Order) {
	if s.orderFn != nil {
		s.orderFn(ctx, order)
	}
}

func (s stubNotifier) AlertCompliance(ctx context.Context, item *model.ComplianceItem) {
	if s.complianceFn != nil {
		s.complianceFn(ctx, item)
	}
}
