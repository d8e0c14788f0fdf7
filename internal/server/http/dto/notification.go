package dto

import (
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// SendWhatsAppRequest is the validated body for POST /api/notify/whatsapp.
type SendWhatsAppRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required,phone"`
	Message     string  `json:"message" binding:"required"`
	OrderID     *string `json:"order_id"`
}

// OrderNotifyRequest targets an owned order for a template send.
type OrderNotifyRequest struct {
	OrderID     string `json:"order_id" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required,phone"`
}

// ComplianceNotifyRequest targets an owned compliance item for an alert send.
type ComplianceNotifyRequest struct {
	ComplianceID int64  `json:"compliance_id" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required,phone"`
}

// NotificationResponse is the wire shape of a delivery log row.
type NotificationResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Recipient    string    `json:"recipient"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	OrderID      *string   `json:"order_id"`
	ComplianceID *int64    `json:"compliance_id"`
	MessageSID   *string   `json:"message_sid"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToNotificationResponse maps a domain row onto the wire shape.
func ToNotificationResponse(n model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		UserID:       n.UserID,
		Type:         n.Type,
		Recipient:    n.Recipient,
		Message:      n.Message,
		Status:       string(n.Status),
		OrderID:      n.OrderID,
		ComplianceID: n.ComplianceID,
		MessageSID:   n.MessageSID,
		CreatedAt:    n.CreatedAt,
	}
}

// ToNotificationResponses maps a slice, never returning nil.
func ToNotificationResponses(rows []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}

// NotificationListResponse nests a page of rows with pagination metadata.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Pagination    Pagination             `json:"pagination"`
}
