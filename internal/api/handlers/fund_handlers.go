package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mf-advisor/advisor_service/internal/domain/services/catalog"
	"github.com/mf-advisor/advisor_service/pkg/logger"
)

// FundHandlers serves the catalog endpoints: search, listing, ranking,
// detail, recommendations, and pairwise statistical comparison.
type FundHandlers struct {
	catalog *catalog.Service
	logger  *logger.Logger
}

// NewFundHandlers creates the fund handlers
func NewFundHandlers(catalogSvc *catalog.Service, log *logger.Logger) *FundHandlers {
	return &FundHandlers{
		catalog: catalogSvc,
		logger:  log,
	}
}

// Search handles GET /api/funds/search
func (h *FundHandlers) Search(c *gin.Context) {
	params := catalog.SearchParams{
		Query:        c.Query("q"),
		ReliableOnly: queryBool(c, "reliable_only"),
		MinAge:       queryFloat(c, "min_age"),
		MinCAGR:      queryFloat(c, "min_cagr"),
	}
	c.JSON(http.StatusOK, h.catalog.Search(params))
}

// ListAll handles GET /api/funds/all
func (h *FundHandlers) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListAll(queryBool(c, "reliable_only")))
}

// Top handles GET /api/funds/top
func (h *FundHandlers) Top(c *gin.Context) {
	params := catalog.TopParams{
		Limit:    queryInt(c, "limit", 10),
		Category: c.Query("category"),
		Risk:     c.Query("risk"),
	}
	c.JSON(http.StatusOK, h.catalog.Top(params))
}

// Detail handles GET /api/funds/:code
func (h *FundHandlers) Detail(c *gin.Context) {
	detail, err := h.catalog.Detail(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Recommendations handles GET /api/recommendations/:code
func (h *FundHandlers) Recommendations(c *gin.Context) {
	response, err := h.catalog.Recommendations(
		c.Param("code"),
		queryInt(c, "limit", 5),
		queryInt(c, "min_score_diff", 5),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CompareStats handles GET /api/compare/:code1/:code2
func (h *FundHandlers) CompareStats(c *gin.Context) {
	response, err := h.catalog.CompareStats(c.Param("code1"), c.Param("code2"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Glossary handles GET /api/metrics/glossary
func (h *FundHandlers) Glossary(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Glossary())
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}

func queryFloat(c *gin.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.Query(name), 64)
	return v
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}
