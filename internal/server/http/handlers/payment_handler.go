package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/server/http/middleware"
	"github.com/textileoem/platform/internal/usecase"
)

// PaymentHandler manages payment provider endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateOrder handles POST /api/payments/create-order. The provider order is
// returned even when the local mirror could not be written.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	req := middleware.BodyFrom[dto.CreatePaymentRequest](c)

	order, record, err := h.facade.CreatePaymentOrder(c.Request.Context(), CurrentUserID(c), req.Draft())
	if err != nil {
		c.Error(err)
		return
	}

	payload := gin.H{"order": order}
	if record != nil {
		payload["payment"] = dto.ToPaymentResponse(*record)
	}
	c.JSON(http.StatusCreated, dto.OKMessage("Payment order created successfully", payload))
}

// Webhook handles POST /api/payments/webhook. The caller is the provider,
// so it authenticates by signature rather than bearer token.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	req := middleware.BodyFrom[dto.VerifyPaymentRequest](c)

	details, record, err := h.facade.VerifyPaymentWebhook(c.Request.Context(), usecase.WebhookVerification{
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Payment verified successfully", gin.H{
		"status":  details.Status,
		"payment": dto.ToPaymentResponse(*record),
	}))
}

// Refund handles POST /api/payments/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	req := middleware.BodyFrom[dto.RefundRequest](c)

	refund, err := h.facade.RefundPayment(c.Request.Context(), CurrentUserID(c), req.PaymentID, req.Amount)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Refund processed successfully", refund))
}

// List handles GET /api/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := model.PaymentFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	payments, total, err := h.facade.Payments(c.Request.Context(), CurrentUserID(c), filter)
	if err != nil {
		c.Error(err)
		return
	}

	setRecordCount(c, len(payments))
	c.JSON(http.StatusOK, dto.OK(dto.PaymentListResponse{
		Payments:   dto.ToPaymentResponses(payments),
		Pagination: dto.NewPagination(page, limit, total),
	}))
}

// Stats handles GET /api/payments/stats.
func (h *PaymentHandler) Stats(c *gin.Context) {
	stats, err := h.facade.PaymentStats(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}

// Get handles GET /api/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	payment, err := h.facade.Payment(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToPaymentResponse(*payment)))
}
