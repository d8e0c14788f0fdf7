package test

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/adapter/supabase"
	"github.com/textileoem/platform/internal/adapter/twilio"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

func repositoryNotFound() error {
	return domainErrors.ErrNotFound
}

// UserRepositoryStub serves a fixed set of accounts.
type UserRepositoryStub struct {
	Users map[string]*model.User
}

// NewUserRepositoryStub seeds one active account.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: map[string]*model.User{
		"user-1": {ID: "user-1", Email: "owner@example.com", Role: model.RoleUser, IsActive: true},
	}}
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if user, ok := s.Users[id]; ok {
		return user, nil
	}
	return nil, repositoryNotFound()
}

// OrderRepositoryStub implements OrderRepository over an in-memory map.
type OrderRepositoryStub struct {
	Orders map[string]*model.Order
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	s.Orders[order.ID] = order
	return order, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, userID, id string) (*model.Order, error) {
	if order, ok := s.Orders[id]; ok && order.UserID == userID {
		return order, nil
	}
	return nil, repositoryNotFound()
}

func (s *OrderRepositoryStub) List(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
	out := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, len(out), nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, userID, id string, patch model.OrderPatch, now time.Time) (*model.Order, error) {
	order, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(order, now)
	return order, nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	delete(s.Orders, id)
	return nil
}

func (s *OrderRepositoryStub) Stats(ctx context.Context, userID string, now time.Time) (*model.OrderStats, error) {
	return &model.OrderStats{}, nil
}

// ComplianceRepositoryStub implements ComplianceRepository over a map.
type ComplianceRepositoryStub struct {
	Items  map[int64]*model.ComplianceItem
	nextID int64
}

func (s *ComplianceRepositoryStub) Create(ctx context.Context, item *model.ComplianceItem) (*model.ComplianceItem, error) {
	if s.Items == nil {
		s.Items = make(map[int64]*model.ComplianceItem)
	}
	s.nextID++
	item.ID = s.nextID
	s.Items[item.ID] = item
	return item, nil
}

func (s *ComplianceRepositoryStub) GetByID(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error) {
	if item, ok := s.Items[id]; ok && item.UserID == userID {
		return item, nil
	}
	return nil, repositoryNotFound()
}

func (s *ComplianceRepositoryStub) List(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error) {
	out := make([]model.ComplianceItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, len(out), nil
}

func (s *ComplianceRepositoryStub) Update(ctx context.Context, userID string, id int64, patch model.CompliancePatch, now time.Time) (*model.ComplianceItem, error) {
	item, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(item, now)
	return item, nil
}

func (s *ComplianceRepositoryStub) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	delete(s.Items, id)
	return nil
}

func (s *ComplianceRepositoryStub) Stats(ctx context.Context, userID string, now time.Time) (*model.ComplianceStats, error) {
	return &model.ComplianceStats{}, nil
}

func (s *ComplianceRepositoryStub) Upcoming(ctx context.Context, userID string, until time.Time) ([]model.ComplianceItem, error) {
	return []model.ComplianceItem{}, nil
}

// PaymentRepositoryStub implements PaymentRepository over a map.
type PaymentRepositoryStub struct {
	Payments map[string]*model.Payment
}

func (s *PaymentRepositoryStub) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.Payments == nil {
		s.Payments = make(map[string]*model.Payment)
	}
	s.Payments[payment.ID] = payment
	return payment, nil
}

func (s *PaymentRepositoryStub) GetByID(ctx context.Context, userID, id string) (*model.Payment, error) {
	if payment, ok := s.Payments[id]; ok && payment.UserID == userID {
		return payment, nil
	}
	return nil, repositoryNotFound()
}

func (s *PaymentRepositoryStub) GetByProviderOrderID(ctx context.Context, razorpayOrderID string) (*model.Payment, error) {
	for _, payment := range s.Payments {
		if payment.RazorpayOrderID == razorpayOrderID {
			return payment, nil
		}
	}
	return nil, repositoryNotFound()
}

func (s *PaymentRepositoryStub) GetByProviderPaymentID(ctx context.Context, userID, razorpayPaymentID string) (*model.Payment, error) {
	for _, payment := range s.Payments {
		if payment.UserID == userID && payment.RazorpayPaymentID != nil && *payment.RazorpayPaymentID == razorpayPaymentID {
			return payment, nil
		}
	}
	return nil, repositoryNotFound()
}

func (s *PaymentRepositoryStub) List(ctx context.Context, userID string, filter model.PaymentFilter) ([]model.Payment, int, error) {
	out := make([]model.Payment, 0, len(s.Payments))
	for _, payment := range s.Payments {
		if payment.UserID == userID {
			out = append(out, *payment)
		}
	}
	return out, len(out), nil
}

func (s *PaymentRepositoryStub) Update(ctx context.Context, id string, update repository.PaymentUpdate, now time.Time) (*model.Payment, error) {
	payment, ok := s.Payments[id]
	if !ok {
		return nil, repositoryNotFound()
	}
	if update.Status != nil {
		payment.Status = *update.Status
	}
	if update.RazorpayPaymentID != nil {
		payment.RazorpayPaymentID = update.RazorpayPaymentID
	}
	if update.PaymentMethod != nil {
		payment.PaymentMethod = update.PaymentMethod
	}
	if update.RefundID != nil {
		payment.RefundID = update.RefundID
	}
	if update.RefundAmount != nil {
		payment.RefundAmount = update.RefundAmount
	}
	payment.UpdatedAt = now
	return payment, nil
}

func (s *PaymentRepositoryStub) Stats(ctx context.Context, userID string, now time.Time) (*model.PaymentStats, error) {
	return &model.PaymentStats{}, nil
}

// NotificationRepositoryStub appends to a slice.
type NotificationRepositoryStub struct {
	Rows []model.Notification
}

func (s *NotificationRepositoryStub) Append(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	s.Rows = append(s.Rows, *n)
	return n, nil
}

func (s *NotificationRepositoryStub) List(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error) {
	out := make([]model.Notification, 0, len(s.Rows))
	for _, row := range s.Rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, len(out), nil
}

func (s *NotificationRepositoryStub) Stats(ctx context.Context, userID string, now time.Time) (*model.NotificationStats, error) {
	return &model.NotificationStats{}, nil
}

// RazorpayClientStub fabricates provider resources.
type RazorpayClientStub struct{}

func (RazorpayClientStub) CreateOrder(ctx context.Context, req razorpay.CreateOrderRequest) (*razorpay.Order, error) {
	return &razorpay.Order{ID: "order_stub", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
}

func (RazorpayClientStub) FetchPayment(ctx context.Context, paymentID string) (*razorpay.PaymentDetails, error) {
	return &razorpay.PaymentDetails{ID: paymentID, Status: "captured"}, nil
}

func (RazorpayClientStub) Refund(ctx context.Context, paymentID string, amount *int64) (*razorpay.RefundDetails, error) {
	return &razorpay.RefundDetails{ID: "rfnd_stub", Status: "processed"}, nil
}

// TwilioSenderStub reports every message as sent.
type TwilioSenderStub struct{}

func (TwilioSenderStub) SendWhatsApp(ctx context.Context, to, body string) (*twilio.Message, error) {
	return &twilio.Message{SID: "SM_stub", Status: "queued", To: to}, nil
}

// SupabaseVerifierStub accepts every token as user-1.
type SupabaseVerifierStub struct{}

func (SupabaseVerifierStub) VerifyToken(ctx context.Context, token string) (string, error) {
	return "user-1", nil
}

var (
	_ repository.UserRepository         = (*UserRepositoryStub)(nil)
	_ repository.OrderRepository        = (*OrderRepositoryStub)(nil)
	_ repository.ComplianceRepository   = (*ComplianceRepositoryStub)(nil)
	_ repository.PaymentRepository      = (*PaymentRepositoryStub)(nil)
	_ repository.NotificationRepository = (*NotificationRepositoryStub)(nil)
	_ razorpay.Client                   = RazorpayClientStub{}
	_ twilio.Sender                     = TwilioSenderStub{}
	_ supabase.Verifier                 = SupabaseVerifierStub{}
)
