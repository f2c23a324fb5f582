package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
	"github.com/mf-advisor/advisor_service/internal/infrastructure/dataset"
	"github.com/mf-advisor/advisor_service/pkg/errors"
	"github.com/mf-advisor/advisor_service/pkg/logger"
	"github.com/mf-advisor/advisor_service/pkg/metrics"
)

// Service is the read-only view over the precomputed fund metrics: search,
// ranking, detail, recommendations, and pairwise statistical comparison.
type Service struct {
	store         *dataset.Store
	searchMaxHits int
	logger        *logger.Logger
}

// SearchParams are the fund search inputs
type SearchParams struct {
	Query        string
	ReliableOnly bool
	MinAge       float64
	MinCAGR      float64
}

// TopParams are the ranking inputs
type TopParams struct {
	Limit    int
	Category string
	Risk     string
}

// NewService creates the catalog service
func NewService(store *dataset.Store, searchMaxHits int, log *logger.Logger) *Service {
	if searchMaxHits <= 0 {
		searchMaxHits = 20
	}
	return &Service{
		store:         store,
		searchMaxHits: searchMaxHits,
		logger:        log,
	}
}

// Status reports dataset counts for the root endpoint
func (s *Service) Status() entities.StatusResponse {
	snap := s.store.Snapshot()

	reliable := 0
	for _, fund := range snap.Funds() {
		if fund.Metrics != nil && fund.Metrics.IsStatisticallyReliable {
			reliable++
		}
	}

	total := snap.FundCount()
	return entities.StatusResponse{
		Status:                "ok",
		TotalFunds:            total,
		ReliableFunds:         reliable,
		InsufficientDataFunds: total - reliable,
		Message:               "MF Advisor API - Enhanced with 33+ metrics",
	}
}

// Search filters funds by name substring and metric thresholds. Queries
// shorter than two characters return an empty result set, not an error.
func (s *Service) Search(params SearchParams) entities.SearchResponse {
	metrics.SearchesTotal.Inc()

	response := entities.SearchResponse{
		Query: params.Query,
		Filters: entities.SearchFilters{
			ReliableOnly: params.ReliableOnly,
			MinAge:       params.MinAge,
			MinCAGR:      params.MinCAGR,
		},
		Results: []entities.FundSummary{},
	}

	if len(params.Query) < 2 {
		return response
	}

	query := strings.ToLower(params.Query)
	for _, fund := range s.store.Snapshot().Funds() {
		if !strings.Contains(strings.ToLower(fund.Name), query) {
			continue
		}

		m := fund.Metrics
		if params.ReliableOnly && (m == nil || !m.IsStatisticallyReliable) {
			continue
		}
		if params.MinAge > 0 && (m == nil || m.FundAgeYears < params.MinAge) {
			continue
		}
		if params.MinCAGR > 0 && (m == nil || m.CAGR < params.MinCAGR) {
			continue
		}

		row := summarize(fund)
		row.DataQuality = dataQualityLabel(m)
		row.TotalNavRecords = fund.TotalNavRecords
		response.Results = append(response.Results, row)
	}

	sortByScore(response.Results)
	if len(response.Results) > s.searchMaxHits {
		response.Results = response.Results[:s.searchMaxHits]
	}
	return response
}

// ListAll returns summaries of every fund
func (s *Service) ListAll(reliableOnly bool) entities.ListResponse {
	funds := []entities.FundSummary{}
	reliable := 0

	for _, fund := range s.store.Snapshot().Funds() {
		isReliable := fund.Metrics != nil && fund.Metrics.IsStatisticallyReliable
		if reliableOnly && !isReliable {
			continue
		}
		if isReliable {
			reliable++
		}
		row := summarize(fund)
		if row.FundAge == nil {
			zero := 0.0
			row.FundAge = &zero
		}
		funds = append(funds, row)
	}

	sortByScore(funds)
	return entities.ListResponse{
		Total:         len(funds),
		ReliableCount: reliable,
		Funds:         funds,
	}
}

// Top returns the highest-ranked reliable funds, optionally filtered by
// category (exact on main_category) and risk label (substring).
func (s *Service) Top(params TopParams) entities.TopFundsResponse {
	if params.Limit <= 0 {
		params.Limit = 10
	}

	results := []entities.FundSummary{}
	for _, fund := range s.store.Snapshot().Funds() {
		if fund.Metrics == nil || !fund.Metrics.IsStatisticallyReliable {
			continue
		}
		if params.Category != "" && !strings.EqualFold(params.Category, fund.MainCategory) {
			continue
		}
		if params.Risk != "" && !strings.Contains(strings.ToLower(fund.Riskometer), strings.ToLower(params.Risk)) {
			continue
		}

		row := summarize(fund)
		sharpe := roundTo(fund.Metrics.Sharpe, 2)
		row.Sharpe = &sharpe
		results = append(results, row)
	}

	sortByScore(results)

	count := len(results)
	if len(results) > params.Limit {
		results = results[:params.Limit]
	}

	return entities.TopFundsResponse{
		Filters: entities.TopFundsFilters{
			Category: params.Category,
			Risk:     params.Risk,
			Limit:    params.Limit,
		},
		Count:   count,
		Results: results,
	}
}

// Detail returns the full fund payload with every metric and the verdict
func (s *Service) Detail(code string) (*entities.FundDetail, error) {
	fund, ok := s.store.Snapshot().FundByCode(code)
	if !ok {
		return nil, errors.NotFound("fund not found")
	}

	m := fund.Metrics
	isReliable := m != nil && m.IsStatisticallyReliable

	detail := &entities.FundDetail{
		Name:            fund.Name,
		Code:            code,
		Type:            fund.FundType,
		Risk:            fund.Riskometer,
		Category:        fund.CategoryDisplay,
		CategoryEmoji:   fund.CategoryEmoji,
		MainCategory:    fund.MainCategory,
		SubCategory:     fund.SubCategory,
		Objective:       fund.InvestmentObjective,
		Benchmark:       fund.Benchmark,
		Managers:        fund.FundManagers,
		Expense:         fund.AnnualExpense,
		ExitLoad:        fund.ExitLoad,
		FundHouse:       fund.FundHouse,
		AssetAllocation: fund.AssetAllocation,
		Variants:        fund.Variants,
		TotalNavRecords: fund.TotalNavRecords,
		IsReliable:      isReliable,
		DataQuality:     dataQualityLabel(m),
		Score:           fund.Score,
		Metrics:         m,
		Verdict:         GenerateVerdict(m),
	}
	if m != nil {
		detail.DataQualityReason = m.DataQualityReason
		if m.FundAgeYears != 0 {
			age := roundTo(m.FundAgeYears, 1)
			detail.FundAge = &age
		}
	}
	return detail, nil
}

// Recommendations finds same-category reliable funds scoring at least
// minScoreDiff above the given fund, best improvements first.
func (s *Service) Recommendations(code string, limit, minScoreDiff int) (*entities.RecommendationsResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	if minScoreDiff <= 0 {
		minScoreDiff = 5
	}

	snap := s.store.Snapshot()
	userFund, ok := snap.FundByCode(code)
	if !ok {
		return nil, errors.NotFound("Fund not found")
	}

	userScore := EffectiveScore(userFund)
	userExpense := userFund.DirectExpense()

	recs := []entities.Recommendation{}
	for _, fund := range snap.Funds() {
		if fund.Name == userFund.Name {
			continue
		}
		if fund.Metrics == nil || !fund.Metrics.IsStatisticallyReliable {
			continue
		}
		if fund.MainCategory != userFund.MainCategory {
			continue
		}

		scoreDiff := EffectiveScore(fund) - userScore
		if scoreDiff < float64(minScoreDiff) {
			continue
		}

		switchPotential := "Low"
		switch {
		case scoreDiff >= 15:
			switchPotential = "High"
		case scoreDiff >= 10:
			switchPotential = "Moderate"
		}

		expense := fund.DirectExpense()
		score := fund.Score
		if score == nil {
			score = &entities.FundScore{Total: EffectiveScore(fund)}
		}

		recs = append(recs, entities.Recommendation{
			Name:              fund.Name,
			Code:              fund.CanonicalCode,
			Category:          fund.CategoryDisplay,
			CategoryEmoji:     fund.CategoryEmoji,
			MainCategory:      fund.MainCategory,
			Score:             score,
			ExpenseRatio:      expense,
			ExpenseDifference: userExpense - expense,
			ScoreDifference:   scoreDiff,
			SwitchPotential:   switchPotential,
			Risk:              fund.Riskometer,
			FundAge:           roundTo(fund.Metrics.FundAgeYears, 1),
			CAGR:              roundTo(fund.Metrics.CAGR*100, 2),
			Sharpe:            roundTo(fund.Metrics.Sharpe, 2),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].ScoreDifference > recs[j].ScoreDifference
	})

	count := len(recs)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	userScoreObj := userFund.Score
	if userScoreObj == nil {
		userScoreObj = &entities.FundScore{Total: userScore}
	}

	userInfo := entities.UserFundInfo{
		Name:          userFund.Name,
		Code:          code,
		Category:      userFund.CategoryDisplay,
		CategoryEmoji: userFund.CategoryEmoji,
		Score:         userScoreObj,
		ExpenseRatio:  userExpense,
		Risk:          userFund.Riskometer,
	}
	if userFund.Metrics != nil {
		userInfo.FundAge = roundTo(userFund.Metrics.FundAgeYears, 1)
		userInfo.CAGR = roundTo(userFund.Metrics.CAGR*100, 2)
		userInfo.Sharpe = roundTo(userFund.Metrics.Sharpe, 2)
	}

	return &entities.RecommendationsResponse{
		UserFund:             userInfo,
		RecommendationsCount: count,
		Recommendations:      recs,
	}, nil
}

// CompareStats returns the side-by-side statistical snapshot of two funds
func (s *Service) CompareStats(code1, code2 string) (*entities.StatComparisonResponse, error) {
	snap := s.store.Snapshot()

	snapshots := make([]entities.StatSnapshot, 0, 2)
	for _, code := range []string{code1, code2} {
		fund, ok := snap.FundByCode(code)
		if !ok {
			return nil, errors.NotFound(fmt.Sprintf("Fund %s not found", code))
		}

		row := entities.StatSnapshot{
			Name:          fund.Name,
			Code:          code,
			Category:      fund.CategoryDisplay,
			CategoryEmoji: fund.CategoryEmoji,
			Score:         fund.Score,
			Expense:       fund.AnnualExpense,
			Risk:          fund.Riskometer,
		}
		if m := fund.Metrics; m != nil {
			row.FundAge = roundTo(m.FundAgeYears, 1)
			row.CAGR = m.CAGR
			row.Sharpe = m.Sharpe
			row.Sortino = m.Sortino
			row.Volatility = m.Volatility
			row.MaxDrawdown = m.MaxDrawdown
			row.ConsistencyScore = m.ConsistencyScore
			row.PositiveMonthsPct = m.PositiveMonthsPct
		}
		snapshots = append(snapshots, row)
	}

	return &entities.StatComparisonResponse{
		Fund1: snapshots[0],
		Fund2: snapshots[1],
	}, nil
}

// summarize builds the shared summary row for search/list/top responses
func summarize(fund *entities.FundRecord) entities.FundSummary {
	row := entities.FundSummary{
		Name:           fund.Name,
		Code:           fund.CanonicalCode,
		Type:           fund.FundType,
		Risk:           fund.Riskometer,
		Category:       fund.CategoryDisplay,
		CategoryEmoji:  fund.CategoryEmoji,
		MainCategory:   fund.MainCategory,
		SubCategory:    fund.SubCategory,
		CompositeScore: CompositeScore(fund.Metrics),
		Score:          fund.Score,
	}

	if m := fund.Metrics; m != nil {
		row.IsReliable = m.IsStatisticallyReliable
		if m.CAGR != 0 {
			cagr := roundTo(m.CAGR*100, 2)
			row.CAGR = &cagr
		}
		if m.FundAgeYears != 0 {
			age := roundTo(m.FundAgeYears, 1)
			row.FundAge = &age
		}
	}
	return row
}

// sortByScore orders by precomputed-score-else-composite, CAGR breaking ties
func sortByScore(rows []entities.FundSummary) {
	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := sortKey(rows[i]), sortKey(rows[j])
		if si != sj {
			return si > sj
		}
		return cagrOrZero(rows[i]) > cagrOrZero(rows[j])
	})
}

func sortKey(row entities.FundSummary) float64 {
	if row.Score != nil {
		return row.Score.Total
	}
	return float64(row.CompositeScore)
}

func cagrOrZero(row entities.FundSummary) float64 {
	if row.CAGR == nil {
		return 0
	}
	return *row.CAGR
}

func dataQualityLabel(m *entities.FundMetrics) string {
	if m != nil && m.IsStatisticallyReliable {
		return "sufficient"
	}
	return "insufficient"
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
