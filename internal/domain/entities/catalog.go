package entities

// FundSummary is one row in search, listing, and ranking responses.
// Pointer fields render as null when the underlying metric is absent,
// matching the dataset's per-field fallbacks.
type FundSummary struct {
	Name            string     `json:"name"`
	Code            string     `json:"code"`
	Type            string     `json:"type"`
	Risk            string     `json:"risk"`
	Category        string     `json:"category"`
	CategoryEmoji   string     `json:"category_emoji"`
	MainCategory    string     `json:"main_category"`
	SubCategory     string     `json:"sub_category"`
	CAGR            *float64   `json:"cagr"`
	Sharpe          *float64   `json:"sharpe,omitempty"`
	FundAge         *float64   `json:"fund_age"`
	IsReliable      bool       `json:"is_reliable"`
	DataQuality     string     `json:"data_quality,omitempty"`
	CompositeScore  int        `json:"composite_score"`
	Score           *FundScore `json:"score"`
	TotalNavRecords int        `json:"total_nav_records,omitempty"`
}

// SearchFilters echoes the filters applied to a search
type SearchFilters struct {
	ReliableOnly bool    `json:"reliable_only"`
	MinAge       float64 `json:"min_age"`
	MinCAGR      float64 `json:"min_cagr"`
	Category     string  `json:"category,omitempty"`
	Risk         string  `json:"risk,omitempty"`
}

// SearchResponse is the fund search payload
type SearchResponse struct {
	Query   string        `json:"query"`
	Filters SearchFilters `json:"filters"`
	Results []FundSummary `json:"results"`
}

// ListResponse is the full fund listing payload
type ListResponse struct {
	Total         int           `json:"total"`
	ReliableCount int           `json:"reliable_count"`
	Funds         []FundSummary `json:"funds"`
}

// TopFundsFilters echoes the ranking filters
type TopFundsFilters struct {
	Category string `json:"category"`
	Risk     string `json:"risk"`
	Limit    int    `json:"limit"`
}

// TopFundsResponse is the ranked fund listing payload
type TopFundsResponse struct {
	Filters TopFundsFilters `json:"filters"`
	Count   int             `json:"count"`
	Results []FundSummary   `json:"results"`
}

// Verdict is the heuristic score/label block on a fund detail
type Verdict struct {
	Verdict     string   `json:"verdict"`
	Score       int      `json:"score"`
	Explanation string   `json:"explanation"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
}

// FundDetail is the full per-fund payload with every metric
type FundDetail struct {
	Name              string                 `json:"name"`
	Code              string                 `json:"code"`
	Type              string                 `json:"type"`
	Risk              string                 `json:"risk"`
	Category          string                 `json:"category"`
	CategoryEmoji     string                 `json:"category_emoji"`
	MainCategory      string                 `json:"main_category"`
	SubCategory       string                 `json:"sub_category"`
	Objective         string                 `json:"objective"`
	Benchmark         string                 `json:"benchmark"`
	Managers          []string               `json:"managers"`
	Expense           map[string]interface{} `json:"expense"`
	ExitLoad          string                 `json:"exit_load"`
	FundAge           *float64               `json:"fund_age"`
	FundHouse         string                 `json:"fund_house"`
	AssetAllocation   map[string]float64     `json:"asset_allocation"`
	Variants          []string               `json:"variants"`
	TotalNavRecords   int                    `json:"total_nav_records"`
	IsReliable        bool                   `json:"is_reliable"`
	DataQuality       string                 `json:"data_quality"`
	DataQualityReason string                 `json:"data_quality_reason"`
	Score             *FundScore             `json:"score"`
	Metrics           *FundMetrics           `json:"metrics"`
	Verdict           *Verdict               `json:"ai_verdict"`
}

// Recommendation is one better-alternative row
type Recommendation struct {
	Name              string     `json:"name"`
	Code              string     `json:"code"`
	Category          string     `json:"category"`
	CategoryEmoji     string     `json:"category_emoji"`
	MainCategory      string     `json:"main_category"`
	Score             *FundScore `json:"score"`
	ExpenseRatio      float64    `json:"expense_ratio"`
	ExpenseDifference float64    `json:"expense_difference"`
	ScoreDifference   float64    `json:"score_difference"`
	SwitchPotential   string     `json:"switch_potential"`
	Risk              string     `json:"risk"`
	FundAge           float64    `json:"fund_age"`
	CAGR              float64    `json:"cagr"`
	Sharpe            float64    `json:"sharpe"`
}

// UserFundInfo summarizes the caller's own fund in a recommendations payload
type UserFundInfo struct {
	Name          string     `json:"name"`
	Code          string     `json:"code"`
	Category      string     `json:"category"`
	CategoryEmoji string     `json:"category_emoji"`
	Score         *FundScore `json:"score"`
	ExpenseRatio  float64    `json:"expense_ratio"`
	Risk          string     `json:"risk"`
	FundAge       float64    `json:"fund_age"`
	CAGR          float64    `json:"cagr"`
	Sharpe        float64    `json:"sharpe"`
}

// RecommendationsResponse is the recommendations payload
type RecommendationsResponse struct {
	UserFund             UserFundInfo     `json:"user_fund"`
	RecommendationsCount int              `json:"recommendations_count"`
	Recommendations      []Recommendation `json:"recommendations"`
}

// StatSnapshot is one side of a pairwise statistical comparison
type StatSnapshot struct {
	Name              string                 `json:"name"`
	Code              string                 `json:"code"`
	Category          string                 `json:"category"`
	CategoryEmoji     string                 `json:"category_emoji"`
	Score             *FundScore             `json:"score"`
	Expense           map[string]interface{} `json:"expense"`
	Risk              string                 `json:"risk"`
	FundAge           float64                `json:"fund_age"`
	CAGR              float64                `json:"cagr"`
	Sharpe            float64                `json:"sharpe"`
	Sortino           float64                `json:"sortino"`
	Volatility        float64                `json:"volatility"`
	MaxDrawdown       float64                `json:"max_drawdown"`
	ConsistencyScore  float64                `json:"consistency_score"`
	PositiveMonthsPct float64                `json:"positive_months_pct"`
}

// StatComparisonResponse is the pairwise statistical comparison payload
type StatComparisonResponse struct {
	Fund1 StatSnapshot `json:"fund1"`
	Fund2 StatSnapshot `json:"fund2"`
}

// StatusResponse is the root status payload
type StatusResponse struct {
	Status                string `json:"status"`
	TotalFunds            int    `json:"total_funds"`
	ReliableFunds         int    `json:"reliable_funds"`
	InsufficientDataFunds int    `json:"insufficient_data_funds"`
	Message               string `json:"message"`
}
