package dto

import (
	"time"

	"github.com/textileoem/platform/internal/domain/model"
)

// CreateOrderRequest is the validated body for POST /api/orders.
type CreateOrderRequest struct {
	Client         string         `json:"client" binding:"required"`
	Product        string         `json:"product" binding:"required"`
	Quantity       int            `json:"quantity" binding:"required,min=1"`
	Specifications map[string]any `json:"specifications"`
	DeliveryDate   *time.Time     `json:"delivery_date"`
	Notes          *string        `json:"notes"`
}

// Draft converts the request to the domain input.
func (r CreateOrderRequest) Draft() model.OrderDraft {
	return model.OrderDraft{
		Client:         r.Client,
		Product:        r.Product,
		Quantity:       r.Quantity,
		Specifications: r.Specifications,
		DeliveryDate:   r.DeliveryDate,
		Notes:          r.Notes,
	}
}

// UpdateOrderRequest is the validated body for PATCH /api/orders/:id. Absent
// fields are left untouched.
type UpdateOrderRequest struct {
	Status       *string    `json:"status" binding:"omitempty,oneof=pending in_production quality_check completed cancelled"`
	Progress     *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	Notes        *string    `json:"notes"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

// Patch converts the request to the domain patch.
func (r UpdateOrderRequest) Patch() model.OrderPatch {
	patch := model.OrderPatch{
		Progress:     r.Progress,
		Notes:        r.Notes,
		DeliveryDate: r.DeliveryDate,
	}
	if r.Status != nil {
		status := model.OrderStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Client         string         `json:"client"`
	Product        string         `json:"product"`
	Quantity       int            `json:"quantity"`
	Specifications map[string]any `json:"specifications"`
	DeliveryDate   *time.Time     `json:"delivery_date"`
	Notes          *string        `json:"notes"`
	Status         string         `json:"status"`
	Progress       int            `json:"progress"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ToOrderResponse maps a domain order onto the wire shape.
func ToOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		UserID:         o.UserID,
		Client:         o.Client,
		Product:        o.Product,
		Quantity:       o.Quantity,
		Specifications: o.Specifications,
		DeliveryDate:   o.DeliveryDate,
		Notes:          o.Notes,
		Status:         string(o.Status),
		Progress:       o.Progress,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToOrderResponses maps a slice, never returning nil.
func ToOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}

// OrderListResponse nests a page of orders with pagination metadata.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination Pagination      `json:"pagination"`
}
