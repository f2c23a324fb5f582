package entities

import (
	"strconv"
	"strings"
)

// FundRecord is one fund from the precomputed metrics dataset. Records are
// immutable after load; absent fields keep their zero values.
type FundRecord struct {
	Name                string                 `json:"name"`
	CanonicalCode       string                 `json:"canonical_code"`
	FundType            string                 `json:"fund_type"`
	Riskometer          string                 `json:"riskometer"`
	MainCategory        string                 `json:"main_category"`
	SubCategory         string                 `json:"sub_category"`
	CategoryDisplay     string                 `json:"category_display"`
	CategoryEmoji       string                 `json:"category_emoji"`
	InvestmentObjective string                 `json:"investment_objective"`
	Benchmark           string                 `json:"benchmark"`
	FundManagers        []string               `json:"fund_managers"`
	AnnualExpense       map[string]interface{} `json:"annual_expense"`
	ExitLoad            string                 `json:"exit_load"`
	FundHouse           string                 `json:"fund_house"`
	AssetAllocation     map[string]float64     `json:"asset_allocation"`
	Variants            []string               `json:"variants"`
	TotalNavRecords     int                    `json:"total_nav_records"`
	Metrics             *FundMetrics           `json:"metrics"`
	Score               *FundScore             `json:"score"`
}

// FundMetrics is the precomputed statistics bag attached to a fund. Ratios
// (cagr, rolling returns, volatility, drawdown) are decimals, not percents:
// 0.12 means 12%.
type FundMetrics struct {
	IsStatisticallyReliable bool   `json:"is_statistically_reliable"`
	DataQuality             string `json:"data_quality"`
	DataQualityReason       string `json:"data_quality_reason"`
	FundAgeYears            float64 `json:"fund_age_years"`

	// Returns
	CAGR        float64 `json:"cagr"`
	Rolling1Y   float64 `json:"rolling_1y"`
	Rolling3Y   float64 `json:"rolling_3y"`
	Rolling5Y   float64 `json:"rolling_5y"`
	TotalReturn float64 `json:"total_return"`
	BestMonth   float64 `json:"best_month"`
	WorstMonth  float64 `json:"worst_month"`
	AvgGain     float64 `json:"avg_gain"`
	AvgLoss     float64 `json:"avg_loss"`

	// Risk
	Volatility        float64 `json:"volatility"`
	MaxDrawdown       float64 `json:"max_drawdown"`
	MaxDrawdownDays   int     `json:"max_drawdown_days"`
	UlcerIndex        float64 `json:"ulcer_index"`
	DownsideDeviation float64 `json:"downside_deviation"`
	VaR95             float64 `json:"var_95"`
	Beta              float64 `json:"beta"`
	TrackingError     float64 `json:"tracking_error"`

	// Risk-adjusted
	Sharpe           float64 `json:"sharpe"`
	Sortino          float64 `json:"sortino"`
	CalmarRatio      float64 `json:"calmar_ratio"`
	GainToPainRatio  float64 `json:"gain_to_pain_ratio"`
	Treynor          float64 `json:"treynor"`
	InformationRatio float64 `json:"information_ratio"`
	Alpha            float64 `json:"alpha"`
	RSquared         float64 `json:"r_squared"`

	// Consistency
	ConsistencyScore  float64 `json:"consistency_score"`
	PositiveMonthsPct float64 `json:"positive_months_pct"`
	WinLossRatio      float64 `json:"win_loss_ratio"`
	Skewness          float64 `json:"skewness"`
	Kurtosis          float64 `json:"kurtosis"`
}

// FundScore is the optional precomputed ranking score shipped with the
// dataset. When present its Total always wins over the locally computed
// composite score.
type FundScore struct {
	Total          float64 `json:"total"`
	Returns        float64 `json:"returns,omitempty"`
	Risk           float64 `json:"risk,omitempty"`
	Consistency    float64 `json:"consistency,omitempty"`
	CostEfficiency float64 `json:"cost_efficiency,omitempty"`
}

// DirectExpense returns the fund's direct-plan expense ratio, defaulting to
// 1.5 when the dataset carries no usable value. The raw field is
// heterogeneous (number or numeric string, keyed by plan name).
func (f *FundRecord) DirectExpense() float64 {
	if f.AnnualExpense == nil {
		return 1.5
	}
	switch v := f.AnnualExpense["Direct"].(type) {
	case float64:
		return v
	case string:
		if out, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return out
		}
	}
	return 1.5
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
