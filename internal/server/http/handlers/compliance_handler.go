package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/server/http/middleware"
)

// ComplianceHandler manages compliance tracking endpoints.
type ComplianceHandler struct {
	facade ComplianceFacade
}

// NewComplianceHandler constructs ComplianceHandler.
func NewComplianceHandler(facade ComplianceFacade) *ComplianceHandler {
	return &ComplianceHandler{facade: facade}
}

// Create handles POST /api/compliance.
func (h *ComplianceHandler) Create(c *gin.Context) {
	req := middleware.BodyFrom[dto.CreateComplianceRequest](c)

	item, err := h.facade.CreateComplianceItem(c.Request.Context(), CurrentUserID(c), req.Draft())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.OKMessage("Compliance item created successfully", dto.ToComplianceResponse(*item)))
}

// List handles GET /api/compliance.
func (h *ComplianceHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := model.ComplianceFilter{
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Page:     page,
		Limit:    limit,
	}

	items, total, err := h.facade.ComplianceItems(c.Request.Context(), CurrentUserID(c), filter)
	if err != nil {
		c.Error(err)
		return
	}

	setRecordCount(c, len(items))
	c.JSON(http.StatusOK, dto.OK(dto.ComplianceListResponse{
		Compliance: dto.ToComplianceResponses(items),
		Pagination: dto.NewPagination(page, limit, total),
	}))
}

// Stats handles GET /api/compliance/stats.
func (h *ComplianceHandler) Stats(c *gin.Context) {
	stats, err := h.facade.ComplianceStats(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}

// Upcoming handles GET /api/compliance/upcoming. The horizon defaults to 30
// days when the query parameter is absent or invalid.
func (h *ComplianceHandler) Upcoming(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))

	items, err := h.facade.UpcomingCompliance(c.Request.Context(), CurrentUserID(c), days)
	if err != nil {
		c.Error(err)
		return
	}
	if days <= 0 {
		days = 30
	}

	setRecordCount(c, len(items))
	c.JSON(http.StatusOK, dto.OK(dto.UpcomingComplianceResponse{
		Upcoming: dto.ToComplianceResponses(items),
		Days:     days,
	}))
}

// Get handles GET /api/compliance/:id.
func (h *ComplianceHandler) Get(c *gin.Context) {
	id, err := complianceID(c)
	if err != nil {
		c.Error(err)
		return
	}

	item, err := h.facade.ComplianceItem(c.Request.Context(), CurrentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToComplianceResponse(*item)))
}

// Update handles PATCH /api/compliance/:id.
func (h *ComplianceHandler) Update(c *gin.Context) {
	id, err := complianceID(c)
	if err != nil {
		c.Error(err)
		return
	}
	req := middleware.BodyFrom[dto.UpdateComplianceRequest](c)

	item, err := h.facade.UpdateComplianceItem(c.Request.Context(), CurrentUserID(c), id, req.Patch())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Compliance item updated successfully", dto.ToComplianceResponse(*item)))
}

// Delete handles DELETE /api/compliance/:id.
func (h *ComplianceHandler) Delete(c *gin.Context) {
	id, err := complianceID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.facade.DeleteComplianceItem(c.Request.Context(), CurrentUserID(c), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Compliance item deleted successfully", nil))
}

func complianceID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainErrors.BadRequest("Invalid compliance item id")
	}
	return id, nil
}
