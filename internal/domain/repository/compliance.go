package repository

import (
	"context"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// ComplianceRepository persists compliance items, scoped by owner.
type ComplianceRepository interface {
	Create(ctx context.Context, item *model.ComplianceItem) (*model.ComplianceItem, error)
	GetByID(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error)
	List(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error)
	Update(ctx context.Context, userID string, id int64, patch model.CompliancePatch, now time.Time) (*model.ComplianceItem, error)
	Delete(ctx context.Context, userID string, id int64) error
	Stats(ctx context.Context, userID string, now time.Time) (*model.ComplianceStats, error)
	Upcoming(ctx context.Context, userID string, until time.Time) ([]model.ComplianceItem, error)
}
