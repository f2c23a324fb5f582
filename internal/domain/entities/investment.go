package entities

// InvestmentComparisonRequest is the compare-investment request body.
// Amount bounds and date age are validated by the comparison service so the
// caller gets the domain's own messages rather than binding errors.
type InvestmentComparisonRequest struct {
	Fund1Code        int     `json:"fund1_code" binding:"required" validate:"required,gt=0"`
	Fund2Code        int     `json:"fund2_code" binding:"required" validate:"required,gt=0"`
	InvestmentDate   string  `json:"investment_date" binding:"required" validate:"required"`
	InvestmentAmount float64 `json:"investment_amount" binding:"required" validate:"required"`
}

// InvestmentLeg describes the purchase side of a computed return
type InvestmentLeg struct {
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
	PurchaseNav    float64 `json:"purchase_nav"`
	PurchaseDate   string  `json:"purchase_date"`
	ExactDateMatch bool    `json:"exact_date_match"`
}

// CurrentLeg describes the valuation side of a computed return
type CurrentLeg struct {
	Nav   float64 `json:"nav"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ReturnFigures carries the computed return numbers. Xirr is the two-point
// compound annualization the dataset has always exposed under that name,
// not a cash-flow-weighted IRR.
type ReturnFigures struct {
	Absolute   float64 `json:"absolute"`
	Percentage float64 `json:"percentage"`
	Xirr       float64 `json:"xirr"`
}

// HoldingMetrics carries units and holding duration
type HoldingMetrics struct {
	Units         float64 `json:"units"`
	DurationDays  int     `json:"duration_days"`
	DurationYears float64 `json:"duration_years"`
}

// InvestmentResult is the full per-fund return computation. Ephemeral:
// built per request, never persisted.
type InvestmentResult struct {
	SchemeCode int            `json:"scheme_code"`
	SchemeName string         `json:"scheme_name"`
	FundHouse  string         `json:"fund_house"`
	Investment InvestmentLeg  `json:"investment"`
	Current    CurrentLeg     `json:"current"`
	Returns    ReturnFigures  `json:"returns"`
	Metrics    HoldingMetrics `json:"metrics"`
}

// ComparisonBlock is the differential between the two legs (fund 2 minus
// fund 1 on each field)
type ComparisonBlock struct {
	ValueDifference      float64 `json:"value_difference"`
	PercentageDifference float64 `json:"percentage_difference"`
	XirrDifference       float64 `json:"xirr_difference"`
	IsFund2Better        bool    `json:"is_fund2_better"`
	ImprovementText      string  `json:"improvement_text"`
}

// Adjustment records whether the comparison window was realigned to the
// later-starting fund's inception date. Always present; Adjusted false
// means both legs used the requested date.
type Adjustment struct {
	Adjusted       bool   `json:"adjusted"`
	Reason         string `json:"reason,omitempty"`
	OriginalDate   string `json:"original_date,omitempty"`
	AdjustedDate   string `json:"adjusted_date,omitempty"`
	Fund2StartDate string `json:"fund2_start_date,omitempty"`
	Disclaimer     string `json:"disclaimer,omitempty"`
}

// ComparisonMeta echoes the request parameters and stamps the calculation
type ComparisonMeta struct {
	InvestmentAmount float64 `json:"investment_amount"`
	InvestmentDate   string  `json:"investment_date"`
	CalculationDate  string  `json:"calculation_date"`
}

// ComparisonResult is the compare-investment response
type ComparisonResult struct {
	Fund1      *InvestmentResult `json:"fund1"`
	Fund2      *InvestmentResult `json:"fund2"`
	Comparison ComparisonBlock   `json:"comparison"`
	Adjustment Adjustment        `json:"adjustment"`
	Meta       ComparisonMeta    `json:"meta"`
}
