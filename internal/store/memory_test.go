package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweather/activity-planner/internal/planner"
	"github.com/tripweather/activity-planner/internal/weather"
)

var paris = weather.Location{City: "Paris", Country: "FR"}

func reportAt(ts time.Time) planner.Report {
	return planner.Report{
		Location:    paris,
		GeneratedAt: ts,
	}
}

func TestGetLatest(t *testing.T) {
	s := NewMemoryStore(10, 0)

	_, err := s.GetLatest(paris)
	assert.ErrorIs(t, err, ErrNotFound)

	now := time.Now().UTC()
	s.SaveReport(paris, reportAt(now.Add(-time.Hour)))
	s.SaveReport(paris, reportAt(now))

	latest, err := s.GetLatest(paris)
	require.NoError(t, err)
	assert.Equal(t, now, latest.GeneratedAt)
}

func TestRetentionByCount(t *testing.T) {
	s := NewMemoryStore(2, 0)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.SaveReport(paris, reportAt(now.Add(time.Duration(i)*time.Minute)))
	}

	reports, err := s.GetRange(paris, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, now.Add(4*time.Minute), reports[1].GeneratedAt)
}

func TestRetentionByAge(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)

	now := time.Now().UTC()
	s.SaveReport(paris, reportAt(now.Add(-2*time.Hour)))
	s.SaveReport(paris, reportAt(now))

	reports, err := s.GetRange(paris, now.Add(-24*time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, now, reports[0].GeneratedAt)
}

func TestGetRangeBounds(t *testing.T) {
	s := NewMemoryStore(0, 0)

	now := time.Now().UTC()
	s.SaveReport(paris, reportAt(now.Add(-3*time.Hour)))
	s.SaveReport(paris, reportAt(now.Add(-2*time.Hour)))
	s.SaveReport(paris, reportAt(now.Add(-1*time.Hour)))

	reports, err := s.GetRange(paris, now.Add(-2*time.Hour), now.Add(-1*time.Hour))
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	_, err = s.GetRange(paris, now.Add(time.Hour), now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetRange(weather.Location{City: "Lyon", Country: "FR"}, now.Add(-24*time.Hour), now)
	assert.ErrorIs(t, err, ErrNotFound)
}
