package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/obs"
	"github.com/textileoem/platform/internal/server/http/dto"
	"github.com/textileoem/platform/internal/usecase"
)

// HealthHandler exposes health and metrics endpoints.
type HealthHandler struct {
	facade  HealthFacade
	metrics *obs.Metrics
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade, metrics *obs.Metrics) *HealthHandler {
	return &HealthHandler{facade: facade, metrics: metrics}
}

// Check handles GET /api/health. Degraded dependencies turn the status code
// to 503 so load balancers can act on it.
func (h *HealthHandler) Check(c *gin.Context) {
	health := h.facade.Health(c.Request.Context())

	code := http.StatusOK
	if health.Status != usecase.HealthOK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, dto.Response{Success: health.Status == usecase.HealthOK, Data: health})
}

// Detailed handles GET /api/health/detailed.
func (h *HealthHandler) Detailed(c *gin.Context) {
	health := h.facade.DetailedHealth(c.Request.Context())

	code := http.StatusOK
	if health.Status != usecase.HealthOK {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, dto.Response{Success: health.Status == usecase.HealthOK, Data: health})
}

// Metrics handles GET /api/health/metrics with a JSON snapshot of the
// in-process request aggregator.
func (h *HealthHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(h.metrics.Stats()))
}

// Prometheus handles GET /api/health/prometheus in text exposition format.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
