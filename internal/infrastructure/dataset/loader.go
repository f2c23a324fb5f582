package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/pkg/logger"
	"github.com/mf-advisor/advisor_service/pkg/metrics"
)

// categoryEmojis maps main categories to their display emoji
var categoryEmojis = map[string]string{
	"Equity":            "📈",
	"Debt":              "🏦",
	"Hybrid":            "⚖️",
	"Income":            "💰",
	"Solution Oriented": "🎯",
	"Other":             "📊",
}

// CategoryEmoji returns the emoji for a main category
func CategoryEmoji(mainCategory string) string {
	if emoji, ok := categoryEmojis[mainCategory]; ok {
		return emoji
	}
	return "📊"
}

// rawNavScheme mirrors the NAV dataset file layout
type rawNavScheme struct {
	Meta struct {
		SchemeCode int    `json:"scheme_code"`
		SchemeName string `json:"scheme_name"`
		FundHouse  string `json:"fund_house"`
	} `json:"meta"`
	Data []rawNavEntry `json:"data"`
}

// rawNavEntry keeps nav as a raw token: the feed serializes it sometimes as
// a number, sometimes as a quoted string.
type rawNavEntry struct {
	Date string          `json:"date"`
	Nav  json.RawMessage `json:"nav"`
}

// Loader reads the two dataset files into an immutable Snapshot
type Loader struct {
	metricsPath string
	navPath     string
	logger      *logger.Logger
}

// NewLoader creates a dataset loader
func NewLoader(metricsPath, navPath string, log *logger.Logger) *Loader {
	return &Loader{
		metricsPath: metricsPath,
		navPath:     navPath,
		logger:      log,
	}
}

// Load parses both files and builds a fresh snapshot
func (l *Loader) Load() (*Snapshot, error) {
	funds, err := l.loadFunds()
	if err != nil {
		return nil, fmt.Errorf("loading fund metrics: %w", err)
	}

	nav, err := l.loadNav()
	if err != nil {
		return nil, fmt.Errorf("loading NAV data: %w", err)
	}

	snap := NewSnapshot(funds, nav)

	metrics.FundsLoadedGauge.Set(float64(snap.FundCount()))
	metrics.NavSchemesLoadedGauge.Set(float64(snap.NavSchemeCount()))
	metrics.SnapshotLoadTimestamp.Set(float64(snap.LoadedAt().Unix()))

	l.logger.Infow("Datasets loaded",
		"funds", snap.FundCount(),
		"nav_schemes", snap.NavSchemeCount(),
		"metrics_file", l.metricsPath,
		"nav_file", l.navPath,
	)

	return snap, nil
}

func (l *Loader) loadFunds() (map[string]*entities.FundRecord, error) {
	raw, err := os.ReadFile(l.metricsPath)
	if err != nil {
		return nil, err
	}

	var parsed map[string]*entities.FundRecord
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.metricsPath, err)
	}

	for name, fund := range parsed {
		fund.Name = name
		if fund.MainCategory == "" {
			fund.MainCategory = "Other"
		}
		if fund.CategoryDisplay == "" {
			fund.CategoryDisplay = fund.MainCategory
		}
		if fund.CategoryEmoji == "" {
			fund.CategoryEmoji = CategoryEmoji(fund.MainCategory)
		}
	}

	return parsed, nil
}

func (l *Loader) loadNav() (map[int]*entities.NavSeries, error) {
	raw, err := os.ReadFile(l.navPath)
	if err != nil {
		return nil, err
	}

	var schemes []rawNavScheme
	if err := json.Unmarshal(raw, &schemes); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.navPath, err)
	}

	index := make(map[int]*entities.NavSeries, len(schemes))
	for _, scheme := range schemes {
		series := &entities.NavSeries{
			SchemeCode: scheme.Meta.SchemeCode,
			SchemeName: scheme.Meta.SchemeName,
			FundHouse:  scheme.Meta.FundHouse,
			Points:     make([]entities.NavPoint, 0, len(scheme.Data)),
		}

		for _, entry := range scheme.Data {
			date, err := entities.ParseDate(entry.Date)
			if err != nil {
				l.logger.Warnw("Skipping NAV entry with bad date",
					"scheme_code", scheme.Meta.SchemeCode, "date", entry.Date)
				continue
			}
			nav, err := parseNav(entry.Nav)
			if err != nil {
				l.logger.Warnw("Skipping NAV entry with bad value",
					"scheme_code", scheme.Meta.SchemeCode, "date", entry.Date, "nav", string(entry.Nav))
				continue
			}
			series.Points = append(series.Points, entities.NavPoint{Date: date, Nav: nav})
		}

		if len(series.Points) == 0 {
			// Empty series count as no data at all.
			continue
		}

		sortAndDedupe(series)
		index[scheme.Meta.SchemeCode] = series
	}

	return index, nil
}

// parseNav accepts both "12.34" and 12.34 encodings
func parseNav(raw json.RawMessage) (decimal.Decimal, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return decimal.NewFromString(asString)
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(asNumber.String())
}

// sortAndDedupe orders points ascending by date. Should the feed ever repeat
// a date, the last-loaded observation wins; the stable sort keeps equal dates
// in file order so taking the final one of each run is deterministic.
func sortAndDedupe(series *entities.NavSeries) {
	sort.SliceStable(series.Points, func(i, j int) bool {
		return series.Points[i].Date.Before(series.Points[j].Date)
	})

	deduped := series.Points[:0]
	for i, point := range series.Points {
		if i+1 < len(series.Points) && series.Points[i+1].Date.Equal(point.Date) {
			continue
		}
		deduped = append(deduped, point)
	}
	series.Points = deduped
}
