package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/internal/domain/services/catalog"
	"github.com/mf-advisor/advisor_service/internal/domain/services/investment"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/config"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/dataset"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/di"
	"github.com/mf-advisor/advisor_service/pkg/health"
	"github.com/mf-advisor/advisor_service/pkg/logger"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	funds := map[string]*entities.FundRecord{
		"Alpha Growth Fund": {
			Name:            "Alpha Growth Fund",
			CanonicalCode:   "100",
			MainCategory:    "Equity",
			CategoryDisplay: "Equity",
			CategoryEmoji:   "📈",
			Score:           &entities.FundScore{Total: 72},
			Metrics:         &entities.FundMetrics{IsStatisticallyReliable: true, CAGR: 0.15, FundAgeYears: 9},
		},
	}
	nav := map[int]*entities.NavSeries{
		100: {
			SchemeCode: 100,
			SchemeName: "Alpha Growth Fund",
			FundHouse:  "Alpha AMC",
			Points: []entities.NavPoint{
				{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Nav: decimal.NewFromInt(10)},
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Nav: decimal.NewFromInt(20)},
			},
		},
		200: {
			SchemeCode: 200,
			SchemeName: "Beta Index Fund",
			FundHouse:  "Beta AMC",
			Points: []entities.NavPoint{
				{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Nav: decimal.NewFromInt(50)},
				{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Nav: decimal.NewFromInt(120)},
			},
		},
	}

	cfg := &config.Config{
		Environment: "development",
		LogLevel:    "error",
		Server: config.ServerConfig{
			Port:            8080,
			AllowedOrigins:  []string{"*"},
			RateLimitPerMin: 1000,
		},
		Investment: config.InvestmentConfig{
			MinAmount:     500,
			MaxAmount:     100000000,
			MinAgeDays:    30,
			SearchMaxHits: 20,
		},
	}

	log := logger.New("error", "development")
	store := dataset.NewStore(dataset.NewSnapshot(funds, nav))

	checker := health.NewHealthChecker(time.Second)
	checker.Register(health.NewDatasetChecker("dataset", func() health.SnapshotInfo {
		return store.Snapshot()
	}, 0))

	container := &di.Container{
		Config:            cfg,
		Logger:            log,
		Store:             store,
		CatalogService:    catalog.NewService(store, cfg.Investment.SearchMaxHits, log),
		InvestmentService: investment.NewService(store, cfg.Investment, log),
		HealthChecker:     checker,
	}
	return SetupRoutes(container)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStatusEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var status entities.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, 1, status.TotalFunds)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dataset"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doRequest(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doRequest(router, http.MethodGet, "/api/funds/search?q=alpha", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp entities.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Alpha Growth Fund", resp.Results[0].Name)
}

func TestDetailEndpoint_NotFound(t *testing.T) {
	router := testRouter(t)

	w := doRequest(router, http.MethodGet, "/api/funds/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp entities.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestCompareInvestmentEndpoint(t *testing.T) {
	router := testRouter(t)

	t.Run("successful comparison", func(t *testing.T) {
		body := `{"fund1_code":100,"fund2_code":200,"investment_date":"01-01-2020","investment_amount":10000}`
		w := doRequest(router, http.MethodPost, "/api/compare-investment", body)
		assert.Equal(t, http.StatusOK, w.Code)

		var result entities.ComparisonResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, 20000.0, result.Fund1.Current.Value)
		assert.Equal(t, 24000.0, result.Fund2.Current.Value)
		assert.True(t, result.Comparison.IsFund2Better)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/api/compare-investment", `{"fund1_code":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp entities.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_REQUEST", resp.Code)
	})

	t.Run("domain validation error", func(t *testing.T) {
		body := `{"fund1_code":100,"fund2_code":200,"investment_date":"2020-01-01","investment_amount":10000}`
		w := doRequest(router, http.MethodPost, "/api/compare-investment", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp entities.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Code)
		assert.Equal(t, "Invalid date format. Use DD-MM-YYYY", resp.Message)
	})
}

func TestGlossaryEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doRequest(router, http.MethodGet, "/api/metrics/glossary", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Compound Annual Growth Rate")
}

func TestCORSPreflights(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/funds/search", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
