package investment

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
)

const daysPerYear = 365.25

// computeReturns produces the full return figures for one fund leg.
// Resolution errors (NOT_FOUND, BEFORE_FUND_START) propagate untouched so
// the comparison engine can branch on them.
func computeReturns(series *entities.NavSeries, amount decimal.Decimal, purchaseDate time.Time) (*entities.InvestmentResult, error) {
	purchase, err := resolveOnDate(series, purchaseDate)
	if err != nil {
		return nil, err
	}

	current, err := resolveLatest(series)
	if err != nil {
		return nil, err
	}

	units := amount.Div(purchase.Nav)
	currentValue := units.Mul(current.Nav)
	absolute := currentValue.Sub(amount)
	percentage := absolute.Div(amount).Mul(decimal.NewFromInt(100))

	days := int(current.Date.Sub(purchaseDate).Hours() / 24)
	years := float64(days) / daysPerYear

	// Two-point compound annualization. The payload calls this xirr for
	// historical reasons; it is not a cash-flow IRR.
	xirr := 0.0
	if years > 0 {
		growth, _ := currentValue.Div(amount).Float64()
		xirr = (math.Pow(growth, 1/years) - 1) * 100
	}

	return &entities.InvestmentResult{
		SchemeCode: series.SchemeCode,
		SchemeName: series.SchemeName,
		FundHouse:  series.FundHouse,
		Investment: entities.InvestmentLeg{
			Amount:         round2(amount),
			Date:           entities.FormatDate(purchaseDate),
			PurchaseNav:    round4(purchase.Nav),
			PurchaseDate:   entities.FormatDate(purchase.Date),
			ExactDateMatch: purchase.ExactMatch,
		},
		Current: entities.CurrentLeg{
			Nav:   round4(current.Nav),
			Date:  entities.FormatDate(current.Date),
			Value: round2(currentValue),
		},
		Returns: entities.ReturnFigures{
			Absolute:   round2(absolute),
			Percentage: round2(percentage),
			Xirr:       roundFloat2(xirr),
		},
		Metrics: entities.HoldingMetrics{
			Units:         round4(units),
			DurationDays:  days,
			DurationYears: roundFloat2(years),
		},
	}, nil
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func round4(d decimal.Decimal) float64 {
	f, _ := d.Round(4).Float64()
	return f
}

func roundFloat2(f float64) float64 {
	return math.Round(f*100) / 100
}
