package model

import "time"

// ComplianceType classifies compliance items.
type ComplianceType string

const (
	ComplianceTypeCertification ComplianceType = "certification"
	ComplianceTypeAudit         ComplianceType = "audit"
	ComplianceTypeReport        ComplianceType = "report"
	ComplianceTypeAlert         ComplianceType = "alert"
)

// CompliancePriority orders items by urgency. Creating a high or critical
// item triggers a best-effort alert notification.
type CompliancePriority string

const (
	PriorityLow      CompliancePriority = "low"
	PriorityMedium   CompliancePriority = "medium"
	PriorityHigh     CompliancePriority = "high"
	PriorityCritical CompliancePriority = "critical"
)

// ComplianceStatus tracks an item's lifecycle. "overdue" is also derived at
// read time from the due date for stats, independent of the stored value.
type ComplianceStatus string

const (
	ComplianceStatusPending    ComplianceStatus = "pending"
	ComplianceStatusInProgress ComplianceStatus = "in_progress"
	ComplianceStatusCompleted  ComplianceStatus = "completed"
	ComplianceStatusOverdue    ComplianceStatus = "overdue"
)

// ComplianceItem is a tracked certification, audit, report or alert.
type ComplianceItem struct {
	ID          int64
	UserID      string
	Title       string
	Type        ComplianceType
	Description *string
	DueDate     time.Time
	Priority    CompliancePriority
	Status      ComplianceStatus
	Documents   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NeedsAlert reports whether creation should fan out a priority alert.
func (c *ComplianceItem) NeedsAlert() bool {
	return c.Priority == PriorityHigh || c.Priority == PriorityCritical
}

// ComplianceDraft is the validated input for item creation.
type ComplianceDraft struct {
	Title       string
	Type        ComplianceType
	Description *string
	DueDate     time.Time
	Priority    CompliancePriority
	Status      ComplianceStatus
	Documents   []string
}

// CompliancePatch is a partial update; nil fields are untouched.
type CompliancePatch struct {
	Status      *ComplianceStatus
	Priority    *CompliancePriority
	Description *string
	DueDate     *time.Time
	Documents   *[]string
}

// Apply merges the patch into the item and refreshes UpdatedAt.
func (p CompliancePatch) Apply(item *ComplianceItem, now time.Time) {
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Priority != nil {
		item.Priority = *p.Priority
	}
	if p.Description != nil {
		item.Description = p.Description
	}
	if p.DueDate != nil {
		item.DueDate = *p.DueDate
	}
	if p.Documents != nil {
		item.Documents = *p.Documents
	}
	item.UpdatedAt = now
}

// Empty reports whether the patch carries no changes.
func (p CompliancePatch) Empty() bool {
	return p.Status == nil && p.Priority == nil && p.Description == nil &&
		p.DueDate == nil && p.Documents == nil
}

// ComplianceFilter narrows compliance listings.
type ComplianceFilter struct {
	Type     string
	Status   string
	Priority string
	Page     int
	Limit    int
}

// ComplianceStats aggregates a user's items by status, type and priority.
// Overdue counts non-completed items whose due date has passed.
type ComplianceStats struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	InProgress int            `json:"in_progress"`
	Completed  int            `json:"completed"`
	Overdue    int            `json:"overdue"`
	ByType     map[string]int `json:"by_type"`
	ByPriority map[string]int `json:"by_priority"`
	ThisMonth  int            `json:"this_month"`
}
