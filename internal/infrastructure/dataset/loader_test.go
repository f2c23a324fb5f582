package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/pkg/logger"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const metricsFixture = `{
	"Alpha Growth Fund": {
		"canonical_code": "100",
		"main_category": "Equity",
		"metrics": {"is_statistically_reliable": true, "cagr": 0.14}
	},
	"Mystery Fund": {
		"canonical_code": "300"
	}
}`

const navFixture = `[
	{
		"meta": {"scheme_code": 100, "scheme_name": "Alpha Growth Fund", "fund_house": "Alpha AMC"},
		"data": [
			{"date": "05-01-2023", "nav": "10.5"},
			{"date": "01-01-2023", "nav": 10.0},
			{"date": "05-01-2023", "nav": "10.6"},
			{"date": "not-a-date", "nav": "11.0"},
			{"date": "10-01-2023", "nav": "garbage"}
		]
	},
	{
		"meta": {"scheme_code": 200, "scheme_name": "Empty Fund", "fund_house": "Beta AMC"},
		"data": [
			{"date": "also-bad", "nav": "1.0"}
		]
	}
]`

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	metricsPath := writeFixture(t, dir, "metrics.json", metricsFixture)
	navPath := writeFixture(t, dir, "nav.json", navFixture)

	loader := NewLoader(metricsPath, navPath, logger.New("error", "development"))
	snap, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, snap.FundCount())
	// Scheme 200 had no parseable rows and is dropped entirely
	assert.Equal(t, 1, snap.NavSchemeCount())
	assert.False(t, snap.LoadedAt().IsZero())
}

func TestLoader_FundDefaults(t *testing.T) {
	dir := t.TempDir()
	metricsPath := writeFixture(t, dir, "metrics.json", metricsFixture)
	navPath := writeFixture(t, dir, "nav.json", `[]`)

	loader := NewLoader(metricsPath, navPath, logger.New("error", "development"))
	snap, err := loader.Load()
	require.NoError(t, err)

	alpha, ok := snap.FundByCode("100")
	require.True(t, ok)
	assert.Equal(t, "Alpha Growth Fund", alpha.Name)
	assert.Equal(t, "Equity", alpha.CategoryDisplay)
	assert.Equal(t, "📈", alpha.CategoryEmoji)

	mystery, ok := snap.FundByCode("300")
	require.True(t, ok)
	assert.Equal(t, "Other", mystery.MainCategory)
	assert.Equal(t, "📊", mystery.CategoryEmoji)
}

func TestLoader_NavSeriesSortedAndDeduped(t *testing.T) {
	dir := t.TempDir()
	metricsPath := writeFixture(t, dir, "metrics.json", `{}`)
	navPath := writeFixture(t, dir, "nav.json", navFixture)

	loader := NewLoader(metricsPath, navPath, logger.New("error", "development"))
	snap, err := loader.Load()
	require.NoError(t, err)

	series, ok := snap.NavSeries(100)
	require.True(t, ok)
	require.Len(t, series.Points, 2)

	// Ascending dates; the repeated 05-01-2023 keeps the last-loaded value
	assert.Equal(t, "01-01-2023", entities.FormatDate(series.Points[0].Date))
	assert.Equal(t, "10", series.Points[0].Nav.String())
	assert.Equal(t, "05-01-2023", entities.FormatDate(series.Points[1].Date))
	assert.Equal(t, "10.6", series.Points[1].Nav.String())
}

func TestLoader_MissingFiles(t *testing.T) {
	loader := NewLoader("/nonexistent/metrics.json", "/nonexistent/nav.json", logger.New("error", "development"))
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "📈", CategoryEmoji("Equity"))
	assert.Equal(t, "🏦", CategoryEmoji("Debt"))
	assert.Equal(t, "📊", CategoryEmoji("Something Else"))
}
