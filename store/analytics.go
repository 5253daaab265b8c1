package store

import (
	"sync"
	"time"

	"github.com/uthybuilds/Homespired-sub000/models"
)

// AnalyticsStore owns the monotonic usage counters. Increments are
// best-effort: a lost write undercounts, it never blocks a storefront
// action, so no change event is published for them.
type AnalyticsStore struct {
	mu      sync.Mutex
	backend Backend
}

func (s *AnalyticsStore) load() models.AnalyticsCounters {
	var counters models.AnalyticsCounters
	s.backend.Load(KeyAnalytics, &counters)
	return counters
}

func (s *AnalyticsStore) Snapshot() models.AnalyticsCounters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *AnalyticsStore) IncrStoreViews() {
	s.mu.Lock()
	defer s.mu.Unlock()
	counters := s.load()
	counters.StoreViews++
	s.backend.Save(KeyAnalytics, counters)
}

func (s *AnalyticsStore) IncrCartAdds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	counters := s.load()
	counters.CartAdds++
	s.backend.Save(KeyAnalytics, counters)
}

func (s *AnalyticsStore) IncrCheckouts(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counters := s.load()
	counters.Checkouts++
	counters.LastCheckoutAt = &at
	s.backend.Save(KeyAnalytics, counters)
}
