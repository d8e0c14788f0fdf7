package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/domain/repository"
)

// ComplianceAlerter receives best-effort alerts for high and critical
// priority items. Delivery failure never fails the triggering mutation.
type ComplianceAlerter interface {
	AlertCompliance(ctx context.Context, item *model.ComplianceItem)
}

// ComplianceUseCase encapsulates compliance tracking logic.
type ComplianceUseCase struct {
	items   repository.ComplianceRepository
	alerter ComplianceAlerter
	logger  *slog.Logger
}

// NewComplianceUseCase constructs ComplianceUseCase.
func NewComplianceUseCase(items repository.ComplianceRepository, alerter ComplianceAlerter, logger *slog.Logger) *ComplianceUseCase {
	return &ComplianceUseCase{items: items, alerter: alerter, logger: logger}
}

// Create registers a compliance item. High and critical priority items fan
// out a WhatsApp alert best-effort.
func (u *ComplianceUseCase) Create(ctx context.Context, userID string, draft model.ComplianceDraft) (*model.ComplianceItem, error) {
	now := time.Now().UTC()
	status := draft.Status
	if status == "" {
		status = model.ComplianceStatusPending
	}
	docs := draft.Documents
	if docs == nil {
		docs = []string{}
	}

	item := &model.ComplianceItem{
		UserID:      userID,
		Title:       draft.Title,
		Type:        draft.Type,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    draft.Priority,
		Status:      status,
		Documents:   docs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	u.logger.Info("compliance item created",
		slog.Int64("compliance_id", created.ID),
		slog.String("user_id", userID),
		slog.String("priority", string(created.Priority)),
	)

	if created.NeedsAlert() {
		u.alerter.AlertCompliance(ctx, created)
	}
	return created, nil
}

// Get returns a single owned item.
func (u *ComplianceUseCase) Get(ctx context.Context, userID string, id int64) (*model.ComplianceItem, error) {
	return u.items.GetByID(ctx, userID, id)
}

// List returns a page of owned items, newest first, with the total count.
func (u *ComplianceUseCase) List(ctx context.Context, userID string, filter model.ComplianceFilter) ([]model.ComplianceItem, int, error) {
	return u.items.List(ctx, userID, filter)
}

// Update applies a partial update to an owned item.
func (u *ComplianceUseCase) Update(ctx context.Context, userID string, id int64, patch model.CompliancePatch) (*model.ComplianceItem, error) {
	updated, err := u.items.Update(ctx, userID, id, patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	u.logger.Info("compliance item updated",
		slog.Int64("compliance_id", id),
		slog.String("user_id", userID),
	)
	return updated, nil
}

// Delete removes an owned item.
func (u *ComplianceUseCase) Delete(ctx context.Context, userID string, id int64) error {
	if err := u.items.Delete(ctx, userID, id); err != nil {
		return err
	}

	u.logger.Info("compliance item deleted",
		slog.Int64("compliance_id", id),
		slog.String("user_id", userID),
	)
	return nil
}

// Stats aggregates the user's items by status, type and priority. Overdue is
// derived from the due date, not the stored status.
func (u *ComplianceUseCase) Stats(ctx context.Context, userID string) (*model.ComplianceStats, error) {
	return u.items.Stats(ctx, userID, time.Now().UTC())
}

// Upcoming returns non-completed items due within the given number of days,
// soonest first. days defaults to 30 when non-positive.
func (u *ComplianceUseCase) Upcoming(ctx context.Context, userID string, days int) ([]model.ComplianceItem, error) {
	if days <= 0 {
		days = 30
	}
	until := time.Now().UTC().AddDate(0, 0, days)
	return u.items.Upcoming(ctx, userID, until)
}
