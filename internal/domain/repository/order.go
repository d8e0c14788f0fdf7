package repository

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// OrderRepository persists production orders. Every accessor is scoped by the
// owning user id; foreign rows surface as ErrNotFound.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, userID, id string) (*model.Order, error)
	List(ctx context.Context, userID string, filter model.OrderFilter) ([]model.Order, int, error)
	Update(ctx context.Context, userID, id string, patch model.OrderPatch, now time.Time) (*model.Order, error)
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string, now time.Time) (*model.OrderStats, error)
}
