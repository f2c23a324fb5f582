package investment

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/config"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/dataset"
	"github.com/mf-advisor/advisor_service/pkg/errors"
	"github.com/mf-advisor/advisor_service/pkg/logger"
	"github.com/mf-advisor/advisor_service/pkg/metrics"
)

// Service compares hypothetical investments between two funds over their
// NAV histories. Pure computation over the immutable snapshot; each request
// reads one snapshot pointer for its whole lifetime.
type Service struct {
	store  *dataset.Store
	cfg    config.InvestmentConfig
	logger *logger.Logger
	now    func() time.Time
}

// NewService creates the investment comparison service
func NewService(store *dataset.Store, cfg config.InvestmentConfig, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: log,
		now:    time.Now,
	}
}

// Compare validates the request, computes both legs, realigns the window
// when fund 2 starts after the requested date, and returns the differential.
func (s *Service) Compare(req entities.InvestmentComparisonRequest) (*entities.ComparisonResult, error) {
	result, err := s.compare(req)
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ComparisonsTotal.WithLabelValues("success").Inc()
	return result, nil
}

func (s *Service) compare(req entities.InvestmentComparisonRequest) (*entities.ComparisonResult, error) {
	investDate, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	snap := s.store.Snapshot()

	series1, ok := snap.NavSeries(req.Fund1Code)
	if !ok {
		return nil, errors.NotFound(
			fmt.Sprintf("Fund 1 (code: %d) not found in NAV database", req.Fund1Code))
	}
	series2, ok := snap.NavSeries(req.Fund2Code)
	if !ok {
		return nil, errors.NotFound(
			fmt.Sprintf("Fund 2 (code: %d) not found in NAV database", req.Fund2Code))
	}

	amount := decimal.NewFromFloat(req.InvestmentAmount)

	fund1, err := computeReturns(series1, amount, investDate)
	if err != nil {
		// An inception miss on the primary fund is terminal: the caller
		// picked a date before their own fund existed.
		if errors.IsCode(err, errors.ErrCodeBeforeFundStart) {
			return nil, errors.ValidationError(
				fmt.Sprintf("%s started on %s. Please select a date after this.",
					series1.SchemeName, errors.StartDate(err)))
		}
		return nil, err
	}

	adjustment := entities.Adjustment{Adjusted: false}

	fund2, err := computeReturns(series2, amount, investDate)
	if err != nil {
		if !errors.IsCode(err, errors.ErrCodeBeforeFundStart) {
			return nil, err
		}

		// Fund 2 started later: realign both legs to its inception so the
		// holding periods stay identical.
		startDateStr := errors.StartDate(err)
		startDate, parseErr := entities.ParseDate(startDateStr)
		if parseErr != nil {
			return nil, errors.Internal("Failed to realign comparison window")
		}

		fund2, err = computeReturns(series2, amount, startDate)
		if err != nil {
			return nil, err
		}

		fund1Adjusted, err := computeReturns(series1, amount, startDate)
		if err != nil {
			return nil, errors.CannotCompare(
				fmt.Sprintf("Cannot compare: Recommended fund started on %s, but your fund data is not available from that date.", startDateStr),
				startDateStr)
		}
		fund1 = fund1Adjusted

		adjustment = entities.Adjustment{
			Adjusted:       true,
			Reason:         "Recommended fund started later than your investment date",
			OriginalDate:   req.InvestmentDate,
			AdjustedDate:   startDateStr,
			Fund2StartDate: startDateStr,
			Disclaimer: fmt.Sprintf("The recommended fund started on %s. Comparison is from that date onwards for fair evaluation.",
				startDateStr),
		}
		metrics.RealignmentsTotal.Inc()
		s.logger.Infow("Comparison window realigned",
			"fund1_code", req.Fund1Code,
			"fund2_code", req.Fund2Code,
			"original_date", req.InvestmentDate,
			"adjusted_date", startDateStr,
		)
	}

	valueDiff := roundFloat2(fund2.Current.Value - fund1.Current.Value)
	percentageDiff := roundFloat2(fund2.Returns.Percentage - fund1.Returns.Percentage)
	xirrDiff := roundFloat2(fund2.Returns.Xirr - fund1.Returns.Xirr)

	direction := "more"
	if valueDiff <= 0 {
		direction = "less"
	}

	return &entities.ComparisonResult{
		Fund1: fund1,
		Fund2: fund2,
		Comparison: entities.ComparisonBlock{
			ValueDifference:      valueDiff,
			PercentageDifference: percentageDiff,
			XirrDifference:       xirrDiff,
			IsFund2Better:        valueDiff > 0,
			ImprovementText: fmt.Sprintf("Fund 2 would have given you ₹%s %s",
				groupThousands(math.Abs(valueDiff)), direction),
		},
		Adjustment: adjustment,
		Meta: entities.ComparisonMeta{
			InvestmentAmount: req.InvestmentAmount,
			InvestmentDate:   req.InvestmentDate,
			CalculationDate:  entities.FormatDate(s.now()),
		},
	}, nil
}

// validate applies the request preconditions and returns the parsed date
func (s *Service) validate(req entities.InvestmentComparisonRequest) (time.Time, error) {
	if req.InvestmentAmount <= 0 {
		return time.Time{}, errors.ValidationError("Investment amount must be positive")
	}
	if req.InvestmentAmount < s.cfg.MinAmount {
		return time.Time{}, errors.ValidationError(
			fmt.Sprintf("Minimum investment amount is ₹%s", groupThousands(s.cfg.MinAmount)))
	}
	if req.InvestmentAmount > s.cfg.MaxAmount {
		return time.Time{}, errors.ValidationError(
			fmt.Sprintf("Maximum investment amount is ₹%s", groupThousands(s.cfg.MaxAmount)))
	}

	investDate, err := entities.ParseDate(req.InvestmentDate)
	if err != nil {
		return time.Time{}, errors.ValidationError("Invalid date format. Use DD-MM-YYYY")
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if !investDate.Before(today) {
		return time.Time{}, errors.ValidationError("Investment date cannot be today or in the future")
	}

	// NAV data lags; comparisons over a shorter window are noise.
	cutoff := today.AddDate(0, 0, -s.cfg.MinAgeDays)
	if investDate.After(cutoff) {
		return time.Time{}, errors.ValidationError("Investment date must be at least 1 month old for accurate comparison")
	}

	return investDate, nil
}

// groupThousands renders 1234567.8 as "1,234,568"
func groupThousands(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if negative {
		return "-" + s
	}
	return s
}
