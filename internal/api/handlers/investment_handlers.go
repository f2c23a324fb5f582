package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/internal/domain/services/investment"
	"github.com/mf-advisor/advisor_service/pkg/logger"
)

// InvestmentHandlers serves the investment comparison endpoint
type InvestmentHandlers struct {
	investment *investment.Service
	validator  *validator.Validate
	logger     *logger.Logger
}

// NewInvestmentHandlers creates the investment handlers
func NewInvestmentHandlers(investmentSvc *investment.Service, log *logger.Logger) *InvestmentHandlers {
	return &InvestmentHandlers{
		investment: investmentSvc,
		validator:  validator.New(),
		logger:     log,
	}
}

// CompareInvestment handles POST /api/compare-investment
func (h *InvestmentHandlers) CompareInvestment(c *gin.Context) {
	var req entities.InvestmentComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.investment.Compare(req)
	if err != nil {
		h.logger.WithError(err).Infow("Investment comparison rejected",
			"fund1_code", req.Fund1Code,
			"fund2_code", req.Fund2Code,
			"investment_date", req.InvestmentDate,
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
