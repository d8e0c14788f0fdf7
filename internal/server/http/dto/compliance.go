package dto

import (
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// CreateComplianceRequest is the validated body for POST /api/compliance.
type CreateComplianceRequest struct {
	Title       string    `json:"title" binding:"required"`
	Type        string    `json:"type" binding:"required,oneof=certification audit report alert"`
	Description *string   `json:"description"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Status      string    `json:"status" binding:"omitempty,oneof=pending in_progress completed overdue"`
	Documents   []string  `json:"documents"`
}

// Draft converts the request to the domain input, applying the medium
// priority default.
func (r CreateComplianceRequest) Draft() model.ComplianceDraft {
	priority := model.CompliancePriority(r.Priority)
	if priority == "" {
		priority = model.PriorityMedium
	}
	return model.ComplianceDraft{
		Title:       r.Title,
		Type:        model.ComplianceType(r.Type),
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    priority,
		Status:      model.ComplianceStatus(r.Status),
		Documents:   r.Documents,
	}
}

// UpdateComplianceRequest is the validated body for PATCH /api/compliance/:id.
type UpdateComplianceRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed overdue"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Documents   *[]string  `json:"documents"`
}

// Patch converts the request to the domain patch.
func (r UpdateComplianceRequest) Patch() model.CompliancePatch {
	patch := model.CompliancePatch{
		Description: r.Description,
		DueDate:     r.DueDate,
		Documents:   r.Documents,
	}
	if r.Status != nil {
		status := model.ComplianceStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := model.CompliancePriority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}

// ComplianceResponse is the wire shape of a compliance item.
type ComplianceResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Documents   []string  `json:"documents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToComplianceResponse maps a domain item onto the wire shape.
func ToComplianceResponse(c model.ComplianceItem) ComplianceResponse {
	docs := c.Documents
	if docs == nil {
		docs = []string{}
	}
	return ComplianceResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Title:       c.Title,
		Type:        string(c.Type),
		Description: c.Description,
		DueDate:     c.DueDate,
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		Documents:   docs,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToComplianceResponses maps a slice, never returning nil.
func ToComplianceResponses(items []model.ComplianceItem) []ComplianceResponse {
	out := make([]ComplianceResponse, 0, len(items))
	for _, c := range items {
		out = append(out, ToComplianceResponse(c))
	}
	return out
}

// ComplianceListResponse nests a page of items with pagination metadata.
type ComplianceListResponse struct {
	Compliance []ComplianceResponse `json:"compliance"`
	Pagination Pagination           `json:"pagination"`
}

// UpcomingComplianceResponse carries deadline items inside the horizon.
type UpcomingComplianceResponse struct {
	Upcoming []ComplianceResponse `json:"upcoming"`
	Days     int                  `json:"days"`
}
