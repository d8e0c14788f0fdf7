package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/server/http/middleware"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	req := middleware.BodyFrom[dto.CreateOrderRequest](c)

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), req.Draft())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Order created successfully", dto.ToOrderResponse(*order)))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := model.OrderFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	orders, total, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c), filter)
	if err != nil {
		c.Error(err)
		return
	}

	setRecordCount(c, len(orders))
	c.JSON(http.StatusOK, dto.OK(dto.OrderListResponse{
		Orders:     dto.ToOrderResponses(orders),
		Pagination: dto.NewPagination(page, limit, total),
	}))
}

// Stats handles GET /api/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToOrderResponse(*order)))
}

// Update handles PATCH /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	req := middleware.BodyFrom[dto.UpdateOrderRequest](c)

	order, err := h.facade.UpdateOrder(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.Patch())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Order updated successfully", dto.ToOrderResponse(*order)))
}

// Delete handles DELETE /api/orders/:id. Only pending orders may be removed.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Order deleted successfully", nil))
}
