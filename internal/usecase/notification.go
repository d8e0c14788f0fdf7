package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/textileoem/platform/internal/adapter/twilio"
	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

// Notification type tags used in the delivery log.
const (
	notificationTypeWhatsApp        = "whatsapp"
	notificationTypeOrderConfirm    = "order_confirmation"
	notificationTypeStatusUpdate    = "status_update"
	notificationTypeComplianceAlert = "compliance_alert"
)

// SendResult reports a provider delivery outcome.
type SendResult struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// NotificationUseCase sends WhatsApp messages and keeps an append-only
// delivery log. It also serves as the best-effort notification hook for the
// order and compliance use cases.
type NotificationUseCase struct {
	log        repository.NotificationRepository
	orders     repository.OrderRepository
	compliance repository.ComplianceRepository
	sender     twilio.Sender
	alertTo    string
	logger     *slog.Logger
}

// NewNotificationUseCase constructs NotificationUseCase. alertTo is the
// business contact number for automatic alerts; empty disables them.
func NewNotificationUseCase(
	log repository.NotificationRepository,
	orders repository.OrderRepository,
	compliance repository.ComplianceRepository,
	sender twilio.Sender,
	alertTo string,
	logger *slog.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		log:        log,
		orders:     orders,
		compliance: compliance,
		sender:     sender,
		alertTo:    alertTo,
		logger:     logger,
	}
}

// SendWhatsApp delivers a free-form message and logs the attempt.
func (u *NotificationUseCase) SendWhatsApp(ctx context.Context, userID, phone, message string, orderID *string) (*SendResult, error) {
	return u.deliver(ctx, delivery{
		userID:    userID,
		kind:      notificationTypeWhatsApp,
		recipient: phone,
		body:      message,
		logLine:   message,
		orderID:   orderID,
	})
}

// SendOrderConfirmation loads an owned order and delivers the confirmation
// template to the given number.
func (u *NotificationUseCase) SendOrderConfirmation(ctx context.Context, userID, orderID, phone string) (*SendResult, error) {
	order, err := u.orders.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return u.deliver(ctx, delivery{
		userID:    userID,
		kind:      notificationTypeOrderConfirm,
		recipient: phone,
		body:      twilio.OrderConfirmation(order),
		logLine:   fmt.Sprintf("Order confirmation for %s", order.ID),
		orderID:   &order.ID,
	})
}

// SendOrderStatusUpdate loads an owned order and delivers the status update
// template to the given number.
func (u *NotificationUseCase) SendOrderStatusUpdate(ctx context.Context, userID, orderID, phone string) (*SendResult, error) {
	order, err := u.orders.GetByID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return u.deliver(ctx, delivery{
		userID:    userID,
		kind:      notificationTypeStatusUpdate,
		recipient: phone,
		body:      twilio.OrderStatusUpdate(order),
		logLine:   fmt.Sprintf("Status update for %s", order.ID),
		orderID:   &order.ID,
	})
}

// SendComplianceAlert loads an owned item and delivers the alert template to
// the given number.
func (u *NotificationUseCase) SendComplianceAlert(ctx context.Context, userID string, complianceID int64, phone string) (*SendResult, error) {
	item, err := u.compliance.GetByID(ctx, userID, complianceID)
	if err != nil {
		return nil, err
	}
	return u.deliver(ctx, delivery{
		userID:       userID,
		kind:         notificationTypeComplianceAlert,
		recipient:    phone,
		body:         twilio.ComplianceAlert(item),
		logLine:      fmt.Sprintf("Compliance alert for %s", item.Title),
		complianceID: &item.ID,
	})
}

// NotifyOrderStatus is the best-effort hook invoked on order status changes.
// It never returns an error to the caller.
func (u *NotificationUseCase) NotifyOrderStatus(ctx context.Context, order *model.Order) {
	if u.alertTo == "" {
		return
	}
	if _, err := u.deliver(ctx, delivery{
		userID:    order.UserID,
		kind:      notificationTypeStatusUpdate,
		recipient: u.alertTo,
		body:      twilio.OrderStatusUpdate(order),
		logLine:   fmt.Sprintf("Status update for %s", order.ID),
		orderID:   &order.ID,
	}); err != nil {
		u.logger.Warn("order status notification failed",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

// AlertCompliance is the best-effort hook invoked when a high or critical
// priority item is created. It never returns an error to the caller.
func (u *NotificationUseCase) AlertCompliance(ctx context.Context, item *model.ComplianceItem) {
	if u.alertTo == "" {
		return
	}
	if _, err := u.deliver(ctx, delivery{
		userID:       item.UserID,
		kind:         notificationTypeComplianceAlert,
		recipient:    u.alertTo,
		body:         twilio.ComplianceAlert(item),
		logLine:      fmt.Sprintf("Compliance alert for %s", item.Title),
		complianceID: &item.ID,
	}); err != nil {
		u.logger.Warn("compliance alert failed",
			slog.Int64("compliance_id", item.ID),
			slog.Any("error", err),
		)
	}
}

// List returns a page of the user's delivery log, newest first.
func (u *NotificationUseCase) List(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error) {
	return u.log.List(ctx, userID, filter)
}

// Stats aggregates the user's delivery log.
func (u *NotificationUseCase) Stats(ctx context.Context, userID string) (*model.NotificationStats, error) {
	return u.log.Stats(ctx, userID, time.Now().UTC())
}

type delivery struct {
	userID       string
	kind         string
	recipient    string
	body         string
	logLine      string
	orderID      *string
	complianceID *int64
}

// deliver sends the message and appends a log row recording the outcome.
// A failed append never fails a successful delivery.
func (u *NotificationUseCase) deliver(ctx context.Context, d delivery) (*SendResult, error) {
	msg, sendErr := u.sender.SendWhatsApp(ctx, d.recipient, d.body)

	record := &model.Notification{
		ID:           ulid.Make().String(),
		UserID:       d.userID,
		Type:         d.kind,
		Recipient:    d.recipient,
		Message:      d.logLine,
		Status:       model.NotificationStatusSent,
		OrderID:      d.orderID,
		ComplianceID: d.complianceID,
		CreatedAt:    time.Now().UTC(),
	}
	if sendErr != nil {
		record.Status = model.NotificationStatusFailed
	} else {
		record.MessageSID = &msg.SID
	}

	if _, err := u.log.Append(ctx, record); err != nil {
		u.logger.Error("failed to log notification",
			slog.String("type", d.kind),
			slog.Any("error", err),
		)
	}

	if sendErr != nil {
		return nil, domainErrors.Upstream("Failed to send WhatsApp message", sendErr)
	}

	u.logger.Info("whatsapp message sent",
		slog.String("type", d.kind),
		slog.String("recipient", d.recipient),
		slog.String("sid", msg.SID),
	)
	return &SendResult{MessageID: msg.SID, Status: msg.Status}, nil
}
