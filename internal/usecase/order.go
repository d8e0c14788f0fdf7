package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

// OrderNotifier receives best-effort order lifecycle notifications. Delivery
// failure never fails the triggering mutation.
type OrderNotifier interface {
	NotifyOrderStatus(ctx context.Context, order *model.Order)
}

// OrderUseCase encapsulates production order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	notifier OrderNotifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, notifier OrderNotifier, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, notifier: notifier, logger: logger}
}

// Create registers a new order owned by userID. The order starts pending
// with zero progress and a generated identifier.
func (u *OrderUseCase) Create(ctx context.Context, userID string, draft model.OrderDraft) (*model.Order, error) {
	now := time.Now().UTC()
	specs := draft.Specifications
	if specs == nil {
		specs = map[string]any{}
	}

	order := &model.Order{
		ID:             model.NewOrderID(now),
		UserID:         userID,
		Client:         draft.Client,
		Product:        draft.Product,
		Quantity:       draft.Quantity,
		Specifications: specs,
		DeliveryDate:   draft.DeliveryDate,
		Notes:          draft.Notes,
		Status:         model.OrderStatusPending,
		Progress:       0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	u.logger.Info("order created",
		slog.String("order_id", created.ID),
		slog.String("user_id", userID),
	)
	return created, nil
}

// Get returns a single owned order.
func (u *OrderUseCase) Get(ctx context.Context, userID, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, userID, id)
}

// List returns a page of owned orders, newest first, with the total count.
func (u *OrderUseCase) List(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error) {
	return u.orders.List(ctx, userID, filter)
}

// Update applies a partial update. When the patch changes the order status
// a WhatsApp status update is sent best-effort.
func (u *OrderUseCase) Update(ctx context.Context, userID, id string, patch model.OrderPatch) (*model.Order, error) {
	previous, err := u.orders.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := u.orders.Update(ctx, userID, id, patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	u.logger.Info("order updated",
		slog.String("order_id", id),
		slog.String("user_id", userID),
	)

	if patch.Status != nil && *patch.Status != previous.Status {
		u.notifier.NotifyOrderStatus(ctx, updated)
	}
	return updated, nil
}

// Delete removes an order. Only pending orders may be deleted.
func (u *OrderUseCase) Delete(ctx context.Context, userID, id string) error {
	existing, err := u.orders.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if !existing.Deletable() {
		return domainErrors.BadRequest("Only pending orders can be deleted")
	}

	if err := u.orders.Delete(ctx, userID, id); err != nil {
		return err
	}

	u.logger.Info("order deleted",
		slog.String("order_id", id),
		slog.String("user_id", userID),
	)
	return nil
}

// Stats aggregates the user's orders by status plus a calendar-month count.
func (u *OrderUseCase) Stats(ctx context.Context, userID string) (*model.OrderStats, error) {
	return u.orders.Stats(ctx, userID, time.Now().UTC())
}
