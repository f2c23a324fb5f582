package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
)

func strongMetrics() *entities.FundMetrics {
	return &entities.FundMetrics{
		IsStatisticallyReliable: true,
		CAGR:                    0.18,
		Rolling3Y:               0.16,
		ConsistencyScore:        75,
		Sharpe:                  2.3,
		MaxDrawdown:             -0.12,
		Sortino:                 2.1,
		CalmarRatio:             2.4,
		GainToPainRatio:         2.2,
		PositiveMonthsPct:       70,
		UlcerIndex:              3.5,
	}
}

func TestCompositeScore(t *testing.T) {
	t.Run("nil metrics score zero", func(t *testing.T) {
		assert.Equal(t, 0, CompositeScore(nil))
	})

	t.Run("unreliable fund scores zero regardless of metrics", func(t *testing.T) {
		m := strongMetrics()
		m.IsStatisticallyReliable = false
		assert.Equal(t, 0, CompositeScore(m))
	})

	t.Run("top band in every bucket", func(t *testing.T) {
		assert.Equal(t, 100, CompositeScore(strongMetrics()))
	})

	t.Run("zero-valued metrics earn no points", func(t *testing.T) {
		assert.Equal(t, 0, CompositeScore(&entities.FundMetrics{IsStatisticallyReliable: true}))
	})

	t.Run("middle bands", func(t *testing.T) {
		m := &entities.FundMetrics{
			IsStatisticallyReliable: true,
			CAGR:                    0.13, // 15
			Rolling3Y:               0.11, // 5
			ConsistencyScore:        65,   // 7
			Sharpe:                  1.4,  // 10
			MaxDrawdown:             -0.25, // 5
			Sortino:                 1.2,  // 3
			CalmarRatio:             1.1,  // 7
			GainToPainRatio:         1.5,  // 5
			PositiveMonthsPct:       58,   // 3
			UlcerIndex:              7,    // 3
		}
		assert.Equal(t, 63, CompositeScore(m))
	})

	t.Run("boundary values fall to the lower band", func(t *testing.T) {
		m := &entities.FundMetrics{
			IsStatisticallyReliable: true,
			CAGR:                    0.12, // strictly-greater comparison: 10 not 15
		}
		assert.Equal(t, 10, CompositeScore(m))
	})
}

func TestGenerateVerdict(t *testing.T) {
	t.Run("unreliable fund", func(t *testing.T) {
		v := GenerateVerdict(&entities.FundMetrics{IsStatisticallyReliable: false})
		assert.Equal(t, "insufficient data 📊", v.Verdict)
		assert.Equal(t, 0, v.Score)
		assert.Contains(t, v.Pros, "New fund - potential opportunity")
		assert.Contains(t, v.Cons, "Limited track record")
	})

	t.Run("high scorer", func(t *testing.T) {
		v := GenerateVerdict(strongMetrics())
		assert.Equal(t, "absolute fire! 🔥🔥🔥", v.Verdict)
		assert.Equal(t, 100, v.Score)
		assert.Contains(t, v.Pros, "Strong returns: 18.0% CAGR")
		assert.Contains(t, v.Pros, "Good risk-adjusted returns (Sharpe: 2.30)")
		assert.LessOrEqual(t, len(v.Pros), 4)
		assert.Contains(t, v.Cons, "Past performance doesn't guarantee future results")
	})

	t.Run("weak fund collects cons", func(t *testing.T) {
		m := &entities.FundMetrics{
			IsStatisticallyReliable: true,
			CAGR:                    0.05,
			MaxDrawdown:             -0.45,
			Volatility:              0.30,
			UlcerIndex:              12,
		}
		v := GenerateVerdict(m)
		assert.Equal(t, "nah, skip this one 🚫", v.Verdict)
		assert.Contains(t, v.Cons, "Below-average returns: 5.0% CAGR")
		assert.Contains(t, v.Cons, "High drawdown: 45.0%")
		assert.Contains(t, v.Cons, "High volatility: 30.0%")
		assert.Contains(t, v.Cons, "Prolonged drawdowns (Ulcer Index: 12.0)")
		assert.Contains(t, v.Pros, "Active management approach")
	})
}

func TestEffectiveScore(t *testing.T) {
	withScore := &entities.FundRecord{
		Score:   &entities.FundScore{Total: 82.5},
		Metrics: &entities.FundMetrics{IsStatisticallyReliable: true, CAGR: 0.09},
	}
	assert.Equal(t, 82.5, EffectiveScore(withScore))

	withoutScore := &entities.FundRecord{Metrics: strongMetrics()}
	assert.Equal(t, 100.0, EffectiveScore(withoutScore))
}
