package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/tripweather/activity-planner/internal/activity"
	"github.com/tripweather/activity-planner/internal/geo"
	"github.com/tripweather/activity-planner/internal/weather"
)

// MaxForecastDays is the longest forecast window the providers support.
const MaxForecastDays = 7

// ErrNoData is returned when no provider produced any forecast data.
var ErrNoData = errors.New("no forecast data available")

// Report is a scored activity report for one location: the aggregated daily
// forecast plus the activity rankings derived from it.
type Report struct {
	Location    weather.Location   `json:"location"`
	GeneratedAt time.Time          `json:"generatedAt"` // always UTC
	Days        weather.Forecast   `json:"days"`
	Rankings    []activity.Ranking `json:"rankings"`
}

// Store is the contract the in-memory store (and any future persistent store)
// must satisfy.
type Store interface {
	SaveReport(loc weather.Location, report Report)
	GetLatest(loc weather.Location) (Report, error)
	GetRange(loc weather.Location, from, to time.Time) ([]Report, error)
}

// Service orchestrates geocoding, concurrent provider fetches, per-day
// aggregation and activity ranking, and persists the resulting reports.
type Service struct {
	store     Store
	providers []weather.ForecastProvider
	resolver  *geo.Resolver
	maxAge    time.Duration
}

// NewService creates a new Service. maxAge controls how old a stored report
// may be before GetReport recomputes it.
func NewService(store Store, providers []weather.ForecastProvider, resolver *geo.Resolver, maxAge time.Duration) *Service {
	return &Service{
		store:     store,
		providers: providers,
		resolver:  resolver,
		maxAge:    maxAge,
	}
}

// Refresh fetches a full-week forecast from all providers concurrently,
// aggregates readings per calendar date, ranks activities, and stores the
// resulting report.
func (s *Service) Refresh(ctx context.Context, loc weather.Location) (Report, error) {
	if len(s.providers) == 0 {
		return Report{}, fmt.Errorf("no forecast providers configured")
	}

	// Attach coordinates when geocoding is available; coordinate-only
	// providers skip locations they cannot resolve.
	if loc.Lat == nil || loc.Lon == nil {
		lat, lon, err := s.resolver.Resolve(loc)
		if err != nil {
			if !errors.Is(err, geo.ErrDisabled) {
				log.Printf("geocoding failed for %s: %v", loc.Key(), err)
			}
		} else {
			loc.Lat = &lat
			loc.Lon = &lon
		}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings []weather.ProviderDay
	)

	for _, p := range s.providers {
		wg.Add(1)
		go func(p weather.ForecastProvider) {
			defer wg.Done()

			days, err := p.FetchDaily(ctx, loc, MaxForecastDays)
			if err != nil {
				// Log and continue; we want partial success when possible.
				log.Printf("provider %s forecast failed for %s: %v", p.Name(), loc.Key(), err)
				return
			}

			mu.Lock()
			readings = append(readings, days...)
			mu.Unlock()
		}(p)
	}

	wg.Wait()

	forecast := weather.MergeForecasts(readings, MaxForecastDays)
	if len(forecast) == 0 {
		return Report{}, fmt.Errorf("%w for %s", ErrNoData, loc.Key())
	}

	rankings, err := activity.Rank(forecast)
	if err != nil {
		return Report{}, fmt.Errorf("ranking activities for %s: %w", loc.Key(), err)
	}

	report := Report{
		Location:    loc,
		GeneratedAt: time.Now().UTC(),
		Days:        forecast,
		Rankings:    rankings,
	}
	s.store.SaveReport(loc, report)

	return report, nil
}

// GetReport returns the activity report for a location over the first days of
// the forecast window. A stored report is reused while it is fresh enough and
// covers the requested window; rankings are recomputed when the window is
// shorter than the stored one, since the weekly average depends on it.
func (s *Service) GetReport(ctx context.Context, loc weather.Location, days int) (Report, error) {
	if days <= 0 || days > MaxForecastDays {
		return Report{}, fmt.Errorf("days must be between 1 and %d", MaxForecastDays)
	}

	report, err := s.store.GetLatest(loc)
	if err != nil || s.stale(report) || len(report.Days) < days {
		report, err = s.Refresh(ctx, loc)
		if err != nil {
			return Report{}, err
		}
	}

	if len(report.Days) < days {
		return Report{}, fmt.Errorf("%w: only %d of %d days available", ErrNoData, len(report.Days), days)
	}
	if len(report.Days) == days {
		return report, nil
	}

	window := report.Days[:days]
	rankings, err := activity.Rank(window)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Location:    report.Location,
		GeneratedAt: report.GeneratedAt,
		Days:        window,
		Rankings:    rankings,
	}, nil
}

// GetForecast returns the aggregated daily forecast without rankings.
func (s *Service) GetForecast(ctx context.Context, loc weather.Location, days int) (weather.Forecast, error) {
	report, err := s.GetReport(ctx, loc, days)
	if err != nil {
		return nil, err
	}
	return report.Days, nil
}

// GetHistory returns stored reports generated between from and to.
func (s *Service) GetHistory(loc weather.Location, from, to time.Time) ([]Report, error) {
	return s.store.GetRange(loc, from, to)
}

// SortByScore returns a copy of rankings ordered by average score descending.
// The ranking engine itself emits fixed activity order; by-score ordering is
// a presentation choice.
func SortByScore(rankings []activity.Ranking) []activity.Ranking {
	sorted := make([]activity.Ranking, len(rankings))
	copy(sorted, rankings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AverageScore > sorted[j].AverageScore
	})
	return sorted
}

func (s *Service) stale(report Report) bool {
	if s.maxAge <= 0 {
		return false
	}
	return time.Since(report.GeneratedAt) > s.maxAge
}
