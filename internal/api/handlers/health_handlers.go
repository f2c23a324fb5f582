package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mf-advisor/advisor_service/internal/domain/services/catalog"
	"github.com/mf-advisor/advisor_service/pkg/health"
	"github.com/mf-advisor/advisor_service/pkg/logger"
	"github.com/mf-advisor/advisor_service/pkg/version"
)

// HealthHandlers serves liveness, readiness, and status endpoints
type HealthHandlers struct {
	checker *health.HealthChecker
	catalog *catalog.Service
	logger  *logger.Logger
}

// NewHealthHandlers creates the health handlers
func NewHealthHandlers(checker *health.HealthChecker, catalogSvc *catalog.Service, log *logger.Logger) *HealthHandlers {
	return &HealthHandlers{
		checker: checker,
		catalog: catalogSvc,
		logger:  log,
	}
}

var startTime = time.Now()

// HealthResponse represents the overall health response
type HealthResponse struct {
	Status    health.Status                 `json:"status"`
	Timestamp time.Time                     `json:"timestamp"`
	Version   string                        `json:"version"`
	Uptime    string                        `json:"uptime"`
	Checks    map[string]health.CheckResult `json:"checks"`
}

// Health runs all registered checks and reports aggregate status
func (h *HealthHandlers) Health(c *gin.Context) {
	status, checks := h.checker.Check(c.Request.Context())

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   version.Get().Version,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if status == health.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Live is a trivial liveness probe
func (h *HealthHandlers) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports dataset counts, matching the root endpoint of the API
func (h *HealthHandlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Status())
}

// Version reports build information
func (h *HealthHandlers) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
