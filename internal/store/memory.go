package store

import (
	"errors"
	"sync"
	"time"

	"github.com/tripweather/activity-planner/internal/planner"
	"github.com/tripweather/activity-planner/internal/weather"
)

// ErrNotFound is returned when no report is available for a given location.
var ErrNotFound = errors.New("no activity report for location")

// reportHistory holds a time-ordered list of reports for a location.
type reportHistory struct {
	Reports []planner.Report
}

// MemoryStore is a concurrency-safe in-memory implementation of the planner
// store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: history
	data map[string]*reportHistory

	// retention configuration
	maxHistory int           // max number of reports per location
	maxAge     time.Duration // optional max age for reports
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*reportHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveReport appends a new report for a location and enforces retention.
func (s *MemoryStore) SaveReport(loc weather.Location, report planner.Report) {
	key := loc.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &reportHistory{}
		s.data[key] = history
	}

	history.Reports = append(history.Reports, report)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Reports) > s.maxHistory {
		over := len(history.Reports) - s.maxHistory
		history.Reports = history.Reports[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Reports); i++ {
			if !history.Reports[i].GeneratedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.Reports) {
			history.Reports = history.Reports[i:]
		}
	}
}

// GetLatest returns the most recent report for a location.
func (s *MemoryStore) GetLatest(loc weather.Location) (planner.Report, error) {
	key := loc.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Reports) == 0 {
		return planner.Report{}, ErrNotFound
	}
	return history.Reports[len(history.Reports)-1], nil
}

// GetRange returns all reports for a location generated between from and to
// (inclusive).
func (s *MemoryStore) GetRange(loc weather.Location, from, to time.Time) ([]planner.Report, error) {
	key := loc.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Reports) == 0 {
		return nil, ErrNotFound
	}

	var result []planner.Report
	for _, r := range history.Reports {
		if !r.GeneratedAt.Before(from) && !r.GeneratedAt.After(to) {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
