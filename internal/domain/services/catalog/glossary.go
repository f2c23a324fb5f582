package catalog

// Glossary returns the static metric reference data served at
// /api/metrics/glossary.
func Glossary() map[string]interface{} {
	return map[string]interface{}{
		"returns": map[string]interface{}{
			"cagr": map[string]interface{}{
				"name":        "CAGR",
				"full_name":   "Compound Annual Growth Rate",
				"description": "Average yearly return over time",
				"good_value":  "> 12% for equity funds",
				"unit":        "percentage",
			},
			"rolling_returns": map[string]interface{}{
				"name":        "Rolling Returns",
				"description": "Returns over specific time periods",
				"periods":     []string{"1Y", "3Y", "5Y"},
			},
		},
		"risk": map[string]interface{}{
			"volatility": map[string]interface{}{
				"name":        "Volatility",
				"description": "How much the NAV fluctuates",
				"good_value":  "Lower is better",
				"unit":        "percentage",
			},
			"max_drawdown": map[string]interface{}{
				"name":        "Max Drawdown",
				"description": "Worst peak-to-trough decline",
				"good_value":  "> -20% is acceptable",
				"unit":        "percentage",
			},
			"ulcer_index": map[string]interface{}{
				"name":        "Ulcer Index",
				"description": "Measures depth and duration of drawdowns",
				"good_value":  "< 5 is low stress, > 10 is high stress",
			},
		},
		"risk_adjusted": map[string]interface{}{
			"sharpe": map[string]interface{}{
				"name":        "Sharpe Ratio",
				"description": "Risk-adjusted returns",
				"good_value":  "> 1 is good, > 2 is excellent",
			},
			"sortino": map[string]interface{}{
				"name":        "Sortino Ratio",
				"description": "Like Sharpe but only penalizes downside",
				"good_value":  "> 1 is good",
			},
			"calmar": map[string]interface{}{
				"name":        "Calmar Ratio",
				"description": "Return per unit of worst-case risk",
				"good_value":  "> 1 is good, > 3 is excellent",
			},
		},
		"consistency": map[string]interface{}{
			"consistency_score": map[string]interface{}{
				"name":        "Consistency Score",
				"description": "% of periods with positive returns",
				"good_value":  "> 60% is consistent",
			},
			"positive_months_pct": map[string]interface{}{
				"name":        "Positive Months %",
				"description": "% of months with gains",
				"good_value":  "> 55% is good",
			},
		},
	}
}
