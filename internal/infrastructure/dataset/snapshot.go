package dataset

import (
	"sync/atomic"
	"time"

	"github.com/mf-advisor/advisor_service/internal/domain/entities"
)

// Snapshot is one immutable view of both datasets. A snapshot is fully built
// before it becomes visible and is never mutated afterwards, so any number of
// readers can share it without locking.
type Snapshot struct {
	funds    map[string]*entities.FundRecord // keyed by display name
	byCode   map[string]*entities.FundRecord // canonical_code index, built at load
	nav      map[int]*entities.NavSeries
	loadedAt time.Time
}

// NewSnapshot builds a snapshot and its code index
func NewSnapshot(funds map[string]*entities.FundRecord, nav map[int]*entities.NavSeries) *Snapshot {
	byCode := make(map[string]*entities.FundRecord, len(funds))
	for _, fund := range funds {
		if fund.CanonicalCode != "" {
			byCode[fund.CanonicalCode] = fund
		}
	}
	return &Snapshot{
		funds:    funds,
		byCode:   byCode,
		nav:      nav,
		loadedAt: time.Now(),
	}
}

// Funds returns the fund map keyed by display name. Read-only.
func (s *Snapshot) Funds() map[string]*entities.FundRecord {
	return s.funds
}

// FundByCode looks a fund up by canonical code
func (s *Snapshot) FundByCode(code string) (*entities.FundRecord, bool) {
	fund, ok := s.byCode[code]
	return fund, ok
}

// NavSeries looks a NAV series up by scheme code
func (s *Snapshot) NavSeries(schemeCode int) (*entities.NavSeries, bool) {
	series, ok := s.nav[schemeCode]
	return series, ok
}

// FundCount returns the number of funds loaded
func (s *Snapshot) FundCount() int {
	return len(s.funds)
}

// NavSchemeCount returns the number of NAV series loaded
func (s *Snapshot) NavSchemeCount() int {
	return len(s.nav)
}

// LoadedAt returns when this snapshot was built
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Store publishes the active snapshot. Readers grab the pointer once per
// request; reloads swap in a whole new snapshot atomically.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given snapshot
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

// Snapshot returns the active snapshot
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap publishes a new snapshot
func (s *Store) Swap(snap *Snapshot) {
	s.current.Store(snap)
}
