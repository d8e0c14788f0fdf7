package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/server/http/middleware"
)

// NotificationHandler manages WhatsApp messaging endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// SendWhatsApp handles POST /api/notify/whatsapp.
func (h *NotificationHandler) SendWhatsApp(c *gin.Context) {
	req := middleware.BodyFrom[dto.SendWhatsAppRequest](c)

	result, err := h.facade.SendWhatsApp(c.Request.Context(), CurrentUserID(c), req.PhoneNumber, req.Message, req.OrderID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("WhatsApp message sent successfully", result))
}

// SendOrderConfirmation handles POST /api/notify/order-confirmation.
func (h *NotificationHandler) SendOrderConfirmation(c *gin.Context) {
	req := middleware.BodyFrom[dto.OrderNotifyRequest](c)

	result, err := h.facade.SendOrderConfirmation(c.Request.Context(), CurrentUserID(c), req.OrderID, req.PhoneNumber)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Order confirmation sent successfully", result))
}

// SendOrderStatusUpdate handles POST /api/notify/order-status-update.
func (h *NotificationHandler) SendOrderStatusUpdate(c *gin.Context) {
	req := middleware.BodyFrom[dto.OrderNotifyRequest](c)

	result, err := h.facade.SendOrderStatusUpdate(c.Request.Context(), CurrentUserID(c), req.OrderID, req.PhoneNumber)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Status update sent successfully", result))
}

// SendComplianceAlert handles POST /api/notify/compliance-alert.
func (h *NotificationHandler) SendComplianceAlert(c *gin.Context) {
	req := middleware.BodyFrom[dto.ComplianceNotifyRequest](c)

	result, err := h.facade.SendComplianceAlert(c.Request.Context(), CurrentUserID(c), req.ComplianceID, req.PhoneNumber)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Compliance alert sent successfully", result))
}

// List handles GET /api/notify.
func (h *NotificationHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := model.NotificationFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	rows, total, err := h.facade.Notifications(c.Request.Context(), CurrentUserID(c), filter)
	if err != nil {
		c.Error(err)
		return
	}

	setRecordCount(c, len(rows))
	c.JSON(http.StatusOK, dto.OK(dto.NotificationListResponse{
		Notifications: dto.ToNotificationResponses(rows),
		Pagination:    dto.NewPagination(page, limit, total),
	}))
}

// Stats handles GET /api/notify/stats.
func (h *NotificationHandler) Stats(c *gin.Context) {
	stats, err := h.facade.NotificationStats(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}
