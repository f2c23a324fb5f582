package catalog

import (
	"fmt"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
)

// CompositeScore ranks a fund 0-100 from its precomputed metrics using fixed
// threshold bands: returns 40 points, risk 30, risk-adjusted 20, stability 10.
// Funds without statistically reliable data score zero. Zero-valued metrics
// earn no points (the dataset uses zero for "absent").
func CompositeScore(m *entities.FundMetrics) int {
	if m == nil || !m.IsStatisticallyReliable {
		return 0
	}

	score := 0

	// RETURNS (40 points)
	switch {
	case m.CAGR > 0.15:
		score += 20
	case m.CAGR > 0.12:
		score += 15
	case m.CAGR > 0.10:
		score += 10
	case m.CAGR > 0.08:
		score += 5
	}

	switch {
	case m.Rolling3Y > 0.15:
		score += 10
	case m.Rolling3Y > 0.12:
		score += 7
	case m.Rolling3Y > 0.10:
		score += 5
	}

	switch {
	case m.ConsistencyScore > 70:
		score += 10
	case m.ConsistencyScore > 60:
		score += 7
	case m.ConsistencyScore > 50:
		score += 5
	}

	// RISK (30 points)
	switch {
	case m.Sharpe > 2:
		score += 15
	case m.Sharpe > 1:
		score += 10
	case m.Sharpe > 0.5:
		score += 5
	}

	// Drawdowns are negative; closer to zero is better.
	if m.MaxDrawdown != 0 {
		switch {
		case m.MaxDrawdown > -0.20:
			score += 10
		case m.MaxDrawdown > -0.30:
			score += 5
		}
	}

	switch {
	case m.Sortino > 2:
		score += 5
	case m.Sortino > 1:
		score += 3
	}

	// RISK-ADJUSTED (20 points)
	switch {
	case m.CalmarRatio > 2:
		score += 10
	case m.CalmarRatio > 1:
		score += 7
	case m.CalmarRatio > 0.5:
		score += 5
	}

	switch {
	case m.GainToPainRatio > 2:
		score += 10
	case m.GainToPainRatio > 1:
		score += 5
	}

	// STABILITY (10 points)
	switch {
	case m.PositiveMonthsPct > 65:
		score += 5
	case m.PositiveMonthsPct > 55:
		score += 3
	}

	if m.UlcerIndex != 0 {
		switch {
		case m.UlcerIndex < 5:
			score += 5
		case m.UlcerIndex < 10:
			score += 3
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// GenerateVerdict builds the score/label/pros/cons block for a fund detail
func GenerateVerdict(m *entities.FundMetrics) *entities.Verdict {
	if m == nil || !m.IsStatisticallyReliable {
		return &entities.Verdict{
			Verdict:     "insufficient data 📊",
			Score:       0,
			Explanation: "Not enough historical data to generate reliable verdict",
			Pros:        []string{"New fund - potential opportunity"},
			Cons:        []string{"Limited track record", "Cannot assess consistency"},
		}
	}

	score := CompositeScore(m)

	var verdict string
	switch {
	case score >= 75:
		verdict = "absolute fire! 🔥🔥🔥"
	case score >= 60:
		verdict = "fire! 🔥"
	case score >= 40:
		verdict = "pretty good! ✨"
	case score >= 25:
		verdict = "meh, could be better 😐"
	default:
		verdict = "nah, skip this one 🚫"
	}

	var pros []string
	if m.CAGR > 0.12 {
		pros = append(pros, fmt.Sprintf("Strong returns: %.1f%% CAGR", m.CAGR*100))
	}
	if m.Sharpe > 1 {
		pros = append(pros, fmt.Sprintf("Good risk-adjusted returns (Sharpe: %.2f)", m.Sharpe))
	}
	if m.ConsistencyScore > 60 {
		pros = append(pros, fmt.Sprintf("Consistent performer (%.0f%% positive periods)", m.ConsistencyScore))
	}
	if m.CalmarRatio > 1 {
		pros = append(pros, fmt.Sprintf("Good downside protection (Calmar: %.2f)", m.CalmarRatio))
	}
	if len(pros) == 0 {
		pros = append(pros, "Active management approach")
	}

	var cons []string
	if m.CAGR != 0 && m.CAGR < 0.08 {
		cons = append(cons, fmt.Sprintf("Below-average returns: %.1f%% CAGR", m.CAGR*100))
	}
	if m.MaxDrawdown < -0.30 {
		cons = append(cons, fmt.Sprintf("High drawdown: %.1f%%", -m.MaxDrawdown*100))
	}
	if m.Volatility > 0.25 {
		cons = append(cons, fmt.Sprintf("High volatility: %.1f%%", m.Volatility*100))
	}
	if m.UlcerIndex > 10 {
		cons = append(cons, fmt.Sprintf("Prolonged drawdowns (Ulcer Index: %.1f)", m.UlcerIndex))
	}
	if len(cons) == 0 {
		cons = append(cons, "Past performance doesn't guarantee future results")
	}

	return &entities.Verdict{
		Verdict:     verdict,
		Score:       score,
		Explanation: fmt.Sprintf("Score: %d/100 based on returns, risk, and consistency", score),
		Pros:        capList(pros, 4),
		Cons:        capList(cons, 4),
	}
}

// EffectiveScore returns the sort key for ranking: the precomputed score
// total when present, otherwise the composite score.
func EffectiveScore(fund *entities.FundRecord) float64 {
	if fund.Score != nil {
		return fund.Score.Total
	}
	return float64(CompositeScore(fund.Metrics))
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
