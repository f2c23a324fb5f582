package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-month-year format used on every external surface
// (requests, responses, and the NAV dataset itself).
const DateLayout = "02-01-2006"

// ParseDate parses a DD-MM-YYYY date string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s, use DD-MM-YYYY", s)
	}
	return t, nil
}

// FormatDate formats a time as DD-MM-YYYY
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NavPoint is one NAV observation
type NavPoint struct {
	Date time.Time       `json:"date"`
	Nav  decimal.Decimal `json:"nav"`
}

// NavSeries holds a fund's chronological NAV history. Points are sorted
// ascending by date at load time and never mutated afterwards.
type NavSeries struct {
	SchemeCode int        `json:"scheme_code"`
	SchemeName string     `json:"scheme_name"`
	FundHouse  string     `json:"fund_house"`
	Points     []NavPoint `json:"points"`
}

// StartDate returns the fund's inception date (first observation)
func (s *NavSeries) StartDate() time.Time {
	if len(s.Points) == 0 {
		return time.Time{}
	}
	return s.Points[0].Date
}

// Latest returns the most recent observation
func (s *NavSeries) Latest() (NavPoint, bool) {
	if len(s.Points) == 0 {
		return NavPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// ResolvedNav is a NAV observation resolved for a requested date.
// ExactMatch is false when the most-recent-prior fallback was used.
type ResolvedNav struct {
	Nav        decimal.Decimal
	Date       time.Time
	ExactMatch bool
}
