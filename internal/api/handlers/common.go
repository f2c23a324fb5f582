package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/pkg/errors"
)

// respondError sends a standardized error response
func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, entities.ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// respondBadRequest sends a bad request error
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message, nil)
}

// respondServiceError translates a service error. Classified errors keep
// their code, message, and status; anything else becomes a generic 500 so
// internals never leak.
func respondServiceError(c *gin.Context, err error) {
	if ae, ok := errors.AsAdvisorError(err); ok {
		respondError(c, ae.StatusCode, string(ae.Code), ae.Message, ae.Details)
		return
	}
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
