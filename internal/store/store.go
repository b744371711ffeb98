package store

import (
	"sync"
	"time"

	"md-shaving/internal/report"
)

type entry struct {
	report    *report.Report
	expiresAt time.Time
}

// ReportStore keeps generated reports in memory so the download endpoints
// can serve them after the analysis request completes. There is no database
// behind this tool; entries simply expire after the TTL and a background
// sweep reclaims them.
type ReportStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a store and starts its sweep goroutine. A non-positive ttl
// defaults to one hour.
func New(ttl time.Duration) *ReportStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &ReportStore{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
	go s.sweep()
	return s
}

// Put stores a report under its own ID.
func (s *ReportStore) Put(r *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[r.ID] = entry{
		report:    r,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns a stored report if present and not expired.
func (s *ReportStore) Get(id string) (*report.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.report, true
}

// Len reports the number of entries currently held, expired or not.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *ReportStore) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}
