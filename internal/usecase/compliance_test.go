package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

func TestComplianceCreateAlertsOnHighPriority(t *testing.T) {
	repo := stubComplianceRepository{createFn: func(_ context.Context, item *model.ComplianceItem) (*model.ComplianceItem, error) {
		created := *item
		created.ID = 42
		return &created, nil
	}}

	alerted := false
	notifier := stubNotifier{complianceFn: func(_ context.Context, item *model.ComplianceItem) {
		alerted = true
		if item.ID != 42 {
			t.Fatalf("alert must carry the persisted item, got id %d", item.ID)
		}
	}}

	uc := NewComplianceUseCase(repo, notifier, nopLogger())
	if _, err := uc.Create(context.Background(), "user-1", model.ComplianceDraft{
		Title:    "GST Filing",
		Type:     model.ComplianceTypeReport,
		DueDate:  time.Now().AddDate(0, 0, 10),
		Priority: model.PriorityCritical,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !alerted {
		t.Fatal("critical priority must trigger an alert")
	}
}

func TestComplianceCreateSkipsAlertOnLowPriority(t *testing.T) {
	repo := stubComplianceRepository{createFn: func(_ context.Context, item *model.ComplianceItem) (*model.ComplianceItem, error) {
		if item.Status != model.ComplianceStatusPending {
			t.Fatalf("blank status must default to pending, got %s", item.Status)
		}
		if item.Documents == nil {
			t.Fatal("nil documents must default to an empty slice")
		}
		return item, nil
	}}
	notifier := stubNotifier{complianceFn: func(context.Context, *model.ComplianceItem) {
		t.Fatal("low priority must not alert")
	}}

	uc := NewComplianceUseCase(repo, notifier, nopLogger())
	if _, err := uc.Create(context.Background(), "user-1", model.ComplianceDraft{
		Title:    "Quarterly report",
		Type:     model.ComplianceTypeReport,
		DueDate:  time.Now().AddDate(0, 1, 0),
		Priority: model.PriorityLow,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComplianceUpcomingDefaultsHorizon(t *testing.T) {
	var captured time.Time
	repo := stubComplianceRepository{upcomingFn: func(_ context.Context, _ string, until time.Time) ([]model.ComplianceItem, error) {
		captured = until
		return nil, nil
	}}
	uc := NewComplianceUseCase(repo, stubNotifier{}, nopLogger())

	before := time.Now().UTC().AddDate(0, 0, 30)
	if _, err := uc.Upcoming(context.Background(), "user-1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().UTC().AddDate(0, 0, 30)

	if captured.Before(before) || captured.After(after) {
		t.Fatalf("default horizon should be 30 days out, got %s", captured)
	}
}

func TestComplianceUpcomingCustomHorizon(t *testing.T) {
	var captured time.Time
	repo := stubComplianceRepository{upcomingFn: func(_ context.Context, _ string, until time.Time) ([]model.ComplianceItem, error) {
		captured = until
		return []model.ComplianceItem{{ID: 1}}, nil
	}}
	uc := NewComplianceUseCase(repo, stubNotifier{}, nopLogger())

	items, err := uc.Upcoming(context.Background(), "user-1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected repository items back, got %d", len(items))
	}
	want := time.Now().UTC().AddDate(0, 0, 7)
	if diff := captured.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("horizon should be 7 days out, got %s", captured)
	}
}
