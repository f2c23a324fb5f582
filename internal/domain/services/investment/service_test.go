package investment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/config"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/dataset"
	"github.com/mf-advisor/advisor_service/pkg/errors"
	"github.com/mf-advisor/advisor_service/pkg/logger"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entities.ParseDate(s)
	require.NoError(t, err)
	return d
}

func navSeries(t *testing.T, code int, name string, points ...string) *entities.NavSeries {
	t.Helper()
	require.Equal(t, 0, len(points)%2, "points must be date/nav pairs")

	series := &entities.NavSeries{
		SchemeCode: code,
		SchemeName: name,
		FundHouse:  "Test Mutual Fund",
	}
	for i := 0; i < len(points); i += 2 {
		nav, err := decimal.NewFromString(points[i+1])
		require.NoError(t, err)
		series.Points = append(series.Points, entities.NavPoint{
			Date: mustDate(t, points[i]),
			Nav:  nav,
		})
	}
	return series
}

func testConfig() config.InvestmentConfig {
	return config.InvestmentConfig{
		MinAmount:  500,
		MaxAmount:  100000000,
		MinAgeDays: 30,
	}
}

// newTestService pins "today" to 15-06-2024 so date-age checks are stable
func newTestService(t *testing.T, series ...*entities.NavSeries) *Service {
	t.Helper()

	nav := make(map[int]*entities.NavSeries, len(series))
	for _, s := range series {
		nav[s.SchemeCode] = s
	}
	store := dataset.NewStore(dataset.NewSnapshot(map[string]*entities.FundRecord{}, nav))

	svc := NewService(store, testConfig(), logger.New("error", "development"))
	svc.now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestResolveOnDate(t *testing.T) {
	series := navSeries(t, 100, "Alpha Growth Fund",
		"01-01-2023", "10.0",
		"05-01-2023", "10.5",
		"10-01-2023", "11.0",
	)

	t.Run("exact match", func(t *testing.T) {
		resolved, err := resolveOnDate(series, mustDate(t, "05-01-2023"))
		require.NoError(t, err)
		assert.True(t, resolved.ExactMatch)
		assert.Equal(t, "10.5", resolved.Nav.String())
	})

	t.Run("falls back to most recent prior date", func(t *testing.T) {
		resolved, err := resolveOnDate(series, mustDate(t, "08-01-2023"))
		require.NoError(t, err)
		assert.False(t, resolved.ExactMatch)
		assert.Equal(t, "10.5", resolved.Nav.String())
		assert.Equal(t, "05-01-2023", entities.FormatDate(resolved.Date))
	})

	t.Run("date before inception carries the start date", func(t *testing.T) {
		_, err := resolveOnDate(series, mustDate(t, "25-12-2022"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeBeforeFundStart))
		assert.Equal(t, "01-01-2023", errors.StartDate(err))
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := resolveOnDate(&entities.NavSeries{SchemeCode: 7}, mustDate(t, "01-01-2023"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	})
}

func TestComputeReturns(t *testing.T) {
	// 366 days between purchase and latest observation
	series := navSeries(t, 100, "Alpha Growth Fund",
		"01-01-2023", "10.0",
		"02-01-2024", "15.0",
	)

	result, err := computeReturns(series, decimal.NewFromInt(50000), mustDate(t, "01-01-2023"))
	require.NoError(t, err)

	assert.Equal(t, 100, result.SchemeCode)
	assert.Equal(t, 5000.0, result.Metrics.Units)
	assert.Equal(t, 75000.0, result.Current.Value)
	assert.Equal(t, 25000.0, result.Returns.Absolute)
	assert.Equal(t, 50.0, result.Returns.Percentage)
	assert.Equal(t, 366, result.Metrics.DurationDays)
	assert.Equal(t, 1.0, result.Metrics.DurationYears)
	// (1.5^(365.25/366) - 1) * 100
	assert.InDelta(t, 49.88, result.Returns.Xirr, 0.01)
	assert.True(t, result.Investment.ExactDateMatch)
	assert.Equal(t, 10.0, result.Investment.PurchaseNav)
	assert.Equal(t, "02-01-2024", result.Current.Date)
}

func TestComputeReturns_SameDayHasZeroXirr(t *testing.T) {
	series := navSeries(t, 100, "Alpha Growth Fund", "01-01-2023", "10.0")

	result, err := computeReturns(series, decimal.NewFromInt(1000), mustDate(t, "01-01-2023"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Metrics.DurationDays)
	assert.Equal(t, 0.0, result.Returns.Xirr)
}

func TestCompare_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		amount  float64
		date    string
		message string
	}{
		{"zero amount", 0, "01-01-2023", "Investment amount must be positive"},
		{"negative amount", -100, "01-01-2023", "Investment amount must be positive"},
		{"below minimum", 499, "01-01-2023", "Minimum investment amount is ₹500"},
		{"above maximum", 100000001, "01-01-2023", "Maximum investment amount is ₹100,000,000"},
		{"bad date format", 1000, "2023-01-01", "Invalid date format. Use DD-MM-YYYY"},
		{"today", 1000, "15-06-2024", "Investment date cannot be today or in the future"},
		{"future", 1000, "01-07-2024", "Investment date cannot be today or in the future"},
		{"29 days old", 1000, "17-05-2024", "Investment date must be at least 1 month old for accurate comparison"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Compare(entities.InvestmentComparisonRequest{
				Fund1Code:        100,
				Fund2Code:        200,
				InvestmentDate:   tt.date,
				InvestmentAmount: tt.amount,
			})
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
			advErr, ok := errors.AsAdvisorError(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, advErr.Message)
		})
	}
}

func TestCompare_ExactlyThirtyDaysOldIsAccepted(t *testing.T) {
	fund1 := navSeries(t, 100, "Alpha Growth Fund",
		"01-01-2020", "10.0", "16-05-2024", "20.0", "14-06-2024", "21.0")
	fund2 := navSeries(t, 200, "Beta Index Fund",
		"01-01-2020", "50.0", "16-05-2024", "90.0", "14-06-2024", "95.0")
	svc := newTestService(t, fund1, fund2)

	result, err := svc.Compare(entities.InvestmentComparisonRequest{
		Fund1Code:        100,
		Fund2Code:        200,
		InvestmentDate:   "16-05-2024",
		InvestmentAmount: 10000,
	})
	require.NoError(t, err)
	assert.False(t, result.Adjustment.Adjusted)
}

func TestCompare_AmountBoundsAreInclusive(t *testing.T) {
	fund1 := navSeries(t, 100, "Alpha Growth Fund", "01-01-2020", "10.0", "01-06-2024", "20.0")
	fund2 := navSeries(t, 200, "Beta Index Fund", "01-01-2020", "50.0", "01-06-2024", "90.0")
	svc := newTestService(t, fund1, fund2)

	for _, amount := range []float64{500, 100000000} {
		_, err := svc.Compare(entities.InvestmentComparisonRequest{
			Fund1Code:        100,
			Fund2Code:        200,
			InvestmentDate:   "01-01-2023",
			InvestmentAmount: amount,
		})
		assert.NoError(t, err, "amount %v", amount)
	}
}

func TestCompare_UnknownFundCode(t *testing.T) {
	fund1 := navSeries(t, 100, "Alpha Growth Fund", "01-01-2020", "10.0", "01-06-2024", "20.0")
	svc := newTestService(t, fund1)

	_, err := svc.Compare(entities.InvestmentComparisonRequest{
		Fund1Code:        100,
		Fund2Code:        999,
		InvestmentDate:   "01-01-2023",
		InvestmentAmount: 10000,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	advErr, _ := errors.AsAdvisorError(err)
	assert.Equal(t, "Fund 2 (code: 999) not found in NAV database", advErr.Message)
}

func TestCompare_DateBeforeFund1Inception(t *testing.T) {
	fund1 := navSeries(t, 100, "Alpha Growth Fund", "01-06-2023", "10.0", "01-06-2024", "12.0")
	fund2 := navSeries(t, 200, "Beta Index Fund", "01-01-2020", "50.0", "01-06-2024", "90.0")
	svc := newTestService(t, fund1, fund2)

	_, err := svc.Compare(entities.InvestmentComparisonRequest{
		Fund1Code:        100,
		Fund2Code:        200,
		InvestmentDate:   "01-01-2023",
		InvestmentAmount: 10000,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
	advErr, _ := errors.AsAdvisorError(err)
	assert.Equal(t, "Alpha Growth Fund started on 01-06-2023. Please select a date after this.", advErr.Message)
}

func TestCompare_RealignsToFund2Inception(t *testing.T) {
	fund1 := navSeries(t, 100, "Alpha Growth Fund",
		"01-01-2020", "10.0",
		"01-06-2022", "12.0",
		"01-06-2024", "18.0",
	)
	fund2 := navSeries(t, 200, "Beta Index Fund",
		"01-06-2022", "100.0",
		"01-06-2024", "160.0",
	)
	svc := newTestService(t, fund1, fund2)

	result, err := svc.Compare(entities.InvestmentComparisonRequest{
		Fund1Code:        100,
		Fund2Code:        200,
		InvestmentDate:   "01-01-2021",
		InvestmentAmount: 12000,
	})
	require.NoError(t, err)

	assert.True(t, result.Adjustment.Adjusted)
	assert.Equal(t, "01-01-2021", result.Adjustment.OriginalDate)
	assert.Equal(t, "01-06-2022", result.Adjustment.AdjustedDate)
	assert.Equal(t, "01-06-2022", result.Adjustment.Fund2StartDate)

	// Both legs run from fund 2's inception so the windows stay identical
	assert.Equal(t, "01-06-2022", result.Fund1.Investment.Date)
	assert.Equal(t, "01-06-2022", result.Fund2.Investment.Date)
	assert.Equal(t, result.Fund1.Metrics.DurationDays, result.Fund2.Metrics.DurationDays)

	// 12000/12 = 1000 units at NAV 18 vs 12000/100 = 120 units at NAV 160
	assert.Equal(t, 18000.0, result.Fund1.Current.Value)
	assert.Equal(t, 19200.0, result.Fund2.Current.Value)
	assert.Equal(t, 1200.0, result.Comparison.ValueDifference)
	assert.True(t, result.Comparison.IsFund2Better)
	assert.Equal(t, "Fund 2 would have given you ₹1,200 more", result.Comparison.ImprovementText)
}

func TestCompare_Fund2Worse(t *testing.T) {
	fund1 := navSeries(t, 100, "Alpha Growth Fund", "01-01-2020", "10.0", "01-06-2024", "20.0")
	fund2 := navSeries(t, 200, "Beta Index Fund", "01-01-2020", "50.0", "01-06-2024", "60.0")
	svc := newTestService(t, fund1, fund2)

	result, err := svc.Compare(entities.InvestmentComparisonRequest{
		Fund1Code:        100,
		Fund2Code:        200,
		InvestmentDate:   "01-01-2020",
		InvestmentAmount: 10000,
	})
	require.NoError(t, err)

	// 10000 doubles in fund 1 but only gains 20% in fund 2
	assert.Equal(t, 20000.0, result.Fund1.Current.Value)
	assert.Equal(t, 12000.0, result.Fund2.Current.Value)
	assert.Equal(t, -8000.0, result.Comparison.ValueDifference)
	assert.False(t, result.Comparison.IsFund2Better)
	assert.Equal(t, "Fund 2 would have given you ₹8,000 less", result.Comparison.ImprovementText)
	assert.False(t, result.Adjustment.Adjusted)
	assert.Equal(t, "15-06-2024", result.Meta.CalculationDate)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "500", groupThousands(500))
	assert.Equal(t, "1,200", groupThousands(1200))
	assert.Equal(t, "100,000,000", groupThousands(100000000))
	assert.Equal(t, "1,234,568", groupThousands(1234567.8))
	assert.Equal(t, "-8,000", groupThousands(-8000))
}
