package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/textileoem/platform/internal/adapter/razorpay"
	"github.com/textileoem/platform/internal/adapter/twilio"
	"github.com/textileoem/platform/internal/config"
	"github.com/textileoem/platform/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newNotificationUseCase,
	newOrderUseCase,
	newComplianceUseCase,
	newPaymentUseCase,
	NewHealthUseCase,
)

func newNotificationUseCase(
	log repository.NotificationRepository,
	orders repository.OrderRepository,
	compliance repository.ComplianceRepository,
	sender twilio.Sender,
	cfg *config.Config,
	logger *slog.Logger,
) *NotificationUseCase {
	return NewNotificationUseCase(log, orders, compliance, sender, cfg.AlertPhoneNumber, logger)
}

func newOrderUseCase(orders repository.OrderRepository, notifications *NotificationUseCase, logger *slog.Logger) *OrderUseCase {
	return NewOrderUseCase(orders, notifications, logger)
}

func newComplianceUseCase(items repository.ComplianceRepository, notifications *NotificationUseCase, logger *slog.Logger) *ComplianceUseCase {
	return NewComplianceUseCase(items, notifications, logger)
}

func newPaymentUseCase(payments repository.PaymentRepository, provider razorpay.Client, cfg *config.Config, logger *slog.Logger) *PaymentUseCase {
	return NewPaymentUseCase(payments, provider, cfg.RazorpayKeySecret, logger)
}
