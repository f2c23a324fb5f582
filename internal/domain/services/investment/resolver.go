package investment

import (
	"fmt"
	"sort"
	"time"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/pkg/errors"
)

// resolveOnDate finds the NAV applicable to a target date: the exact
// observation when one exists, otherwise the most recent prior one.
// A target before the fund's first observation returns a BEFORE_FUND_START
// error carrying the inception date, which the comparison engine uses to
// realign rather than fail.
func resolveOnDate(series *entities.NavSeries, target time.Time) (entities.ResolvedNav, error) {
	if len(series.Points) == 0 {
		return entities.ResolvedNav{}, errors.NotFound(
			fmt.Sprintf("No NAV data available for scheme %d", series.SchemeCode))
	}

	start := series.StartDate()
	if target.Before(start) {
		return entities.ResolvedNav{}, errors.BeforeFundStart(
			fmt.Sprintf("Fund started on %s, which is after the investment date", entities.FormatDate(start)),
			entities.FormatDate(start),
		)
	}

	// First index strictly after the target; the observation before it is
	// the exact match or the most recent prior date.
	idx := sort.Search(len(series.Points), func(i int) bool {
		return series.Points[i].Date.After(target)
	})
	if idx == 0 {
		// Unreachable after the inception check, handled defensively.
		return entities.ResolvedNav{}, errors.NotFound(
			fmt.Sprintf("No NAV data for scheme %d on or before %s", series.SchemeCode, entities.FormatDate(target)))
	}

	point := series.Points[idx-1]
	return entities.ResolvedNav{
		Nav:        point.Nav,
		Date:       point.Date,
		ExactMatch: point.Date.Equal(target),
	}, nil
}

// resolveLatest returns the most recent observation
func resolveLatest(series *entities.NavSeries) (entities.ResolvedNav, error) {
	point, ok := series.Latest()
	if !ok {
		return entities.ResolvedNav{}, errors.NotFound(
			fmt.Sprintf("Current NAV data not available for scheme %d", series.SchemeCode))
	}
	return entities.ResolvedNav{
		Nav:        point.Nav,
		Date:       point.Date,
		ExactMatch: true,
	}, nil
}
