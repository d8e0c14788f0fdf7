package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
)

func TestOrderCreateDefaults(t *testing.T) {
	repo := stubOrderRepository{createFn: func(_ context.Context, order *model.Order) (*model.Order, error) {
		if order.Status != model.OrderStatusPending || order.Progress != 0 {
			t.Fatalf("new order must start pending at 0%%, got %s/%d", order.Status, order.Progress)
		}
		if !strings.HasPrefix(order.ID, "ORD-") {
			t.Fatalf("unexpected order id %s", order.ID)
		}
		if order.Specifications == nil {
			t.Fatal("nil specifications must default to an empty map")
		}
		return order, nil
	}}
	uc := NewOrderUseCase(repo, stubNotifier{}, nopLogger())

	order, err := uc.Create(context.Background(), "user-1", model.OrderDraft{
		Client:   "Acme Mills",
		Product:  "Cotton Shirts",
		Quantity: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.UserID != "user-1" {
		t.Fatalf("owner not set: %q", order.UserID)
	}
}

func TestOrderUpdateNotifiesOnStatusChange(t *testing.T) {
	existing := &model.Order{ID: "ORD-1-AAAA", UserID: "user-1", Status: model.OrderStatusPending}
	repo := stubOrderRepository{
		getByIDFn: func(context.Context, string, string) (*model.Order, error) {
			return existing, nil
		},
		updateFn: func(_ context.Context, _, _ string, patch model.OrderPatch, now time.Time) (*model.Order, error) {
			updated := *existing
			patch.Apply(&updated, now)
			return &updated, nil
		},
	}

	notified := false
	notifier := stubNotifier{orderFn: func(_ context.Context, order *model.Order) {
		notified = true
		if order.Status != model.OrderStatusInProduction {
			t.Fatalf("notifier received stale status %s", order.Status)
		}
	}}

	uc := NewOrderUseCase(repo, notifier, nopLogger())
	status := model.OrderStatusInProduction
	if _, err := uc.Update(context.Background(), "user-1", "ORD-1-AAAA", model.OrderPatch{Status: &status}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !notified {
		t.Fatal("status change must trigger a notification")
	}
}

func TestOrderUpdateSkipsNotificationWhenStatusUnchanged(t *testing.T) {
	existing := &model.Order{ID: "ORD-1-AAAA", UserID: "user-1", Status: model.OrderStatusPending}
	repo := stubOrderRepository{
		getByIDFn: func(context.Context, string, string) (*model.Order, error) { return existing, nil },
		updateFn: func(_ context.Context, _, _ string, patch model.OrderPatch, now time.Time) (*model.Order, error) {
			updated := *existing
			patch.Apply(&updated, now)
			return &updated, nil
		},
	}
	notifier := stubNotifier{orderFn: func(context.Context, *model.Order) {
		t.Fatal("progress-only update must not notify")
	}}

	uc := NewOrderUseCase(repo, notifier, nopLogger())
	progress := 50
	if _, err := uc.Update(context.Background(), "user-1", "ORD-1-AAAA", model.OrderPatch{Progress: &progress}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderDeleteRejectsNonPending(t *testing.T) {
	repo := stubOrderRepository{
		getByIDFn: func(context.Context, string, string) (*model.Order, error) {
			return &model.Order{ID: "ORD-1-AAAA", Status: model.OrderStatusInProduction}, nil
		},
		deleteFn: func(context.Context, string, string) error {
			t.Fatal("delete must not reach the repository")
			return nil
		},
	}
	uc := NewOrderUseCase(repo, stubNotifier{}, nopLogger())

	err := uc.Delete(context.Background(), "user-1", "ORD-1-AAAA")
	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) || appErr.Status != 400 {
		t.Fatalf("expected 400 AppError, got %v", err)
	}
	if appErr.Message != "Only pending orders can be deleted" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestOrderDeletePending(t *testing.T) {
	deleted := false
	repo := stubOrderRepository{
		getByIDFn: func(context.Context, string, string) (*model.Order, error) {
			return &model.Order{ID: "ORD-1-AAAA", Status: model.OrderStatusPending}, nil
		},
		deleteFn: func(context.Context, string, string) error {
			deleted = true
			return nil
		},
	}
	uc := NewOrderUseCase(repo, stubNotifier{}, nopLogger())

	if err := uc.Delete(context.Background(), "user-1", "ORD-1-AAAA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("pending order must be deleted")
	}
}

func TestOrderGetPropagatesNotFound(t *testing.T) {
	repo := stubOrderRepository{getByIDFn: func(context.Context, string, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	uc := NewOrderUseCase(repo, stubNotifier{}, nopLogger())

	if _, err := uc.Get(context.Background(), "user-1", "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
