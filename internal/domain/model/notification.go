package model

import "time"

// NotificationStatus records the outcome of a delivery attempt.
type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification is an immutable delivery log record. Rows are appended once
// and never updated.
type Notification struct {
	ID           string
	UserID       string
	Type         string
	Recipient    string
	Message      string
	Status       NotificationStatus
	OrderID      *string
	ComplianceID *int64
	MessageSID   *string
	CreatedAt    time.Time
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	Type   string
	Status string
	Page   int
	Limit  int
}

// NotificationStats aggregates a user's notification log.
type NotificationStats struct {
	Total     int            `json:"total"`
	Sent      int            `json:"sent"`
	Failed    int            `json:"failed"`
	ByType    map[string]int `json:"by_type"`
	ThisMonth int            `json:"this_month"`
}
