package repository

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// NotificationRepository appends delivery log records. The log is
// append-only; there is no update path.
type NotificationRepository interface {
	Append(ctx context.Context, n *model.Notification) (*model.Notification, error)
	List(ctx context.Context, userID string, filter model.NotificationFilter) ([]model.Notification, int, error)
	Stats(ctx context.Context, userID string, now time.Time) (*model.NotificationStats, error)
}
