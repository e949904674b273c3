package planner_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweather/activity-planner/internal/activity"
	"github.com/tripweather/activity-planner/internal/geo"
	"github.com/tripweather/activity-planner/internal/planner"
	"github.com/tripweather/activity-planner/internal/store"
	"github.com/tripweather/activity-planner/internal/weather"
)

var nice = weather.Location{City: "Nice", Country: "FR"}

// fakeProvider serves a fixed weekly forecast and counts calls.
type fakeProvider struct {
	name  string
	days  []weather.ProviderDay
	err   error
	calls atomic.Int64
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) FetchDaily(_ context.Context, _ weather.Location, days int) ([]weather.ProviderDay, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if days < len(f.days) {
		return f.days[:days], nil
	}
	return f.days, nil
}

func weekOf(provider string, base weather.ProviderDay) []weather.ProviderDay {
	days := make([]weather.ProviderDay, 7)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for i := range days {
		days[i] = base
		days[i].ProviderName = provider
		days[i].Date = start.AddDate(0, 0, i).Format(weather.DateLayout)
	}
	return days
}

func newService(maxAge time.Duration, provs ...weather.ForecastProvider) (*planner.Service, *store.MemoryStore) {
	memStore := store.NewMemoryStore(10, 0)
	svc := planner.NewService(memStore, provs, geo.NewResolver(""), maxAge)
	return svc, memStore
}

func TestRefreshMergesProvidersAndRanks(t *testing.T) {
	warm := weather.ProviderDay{MaxTempC: 24, MinTempC: 14, WindKph: 20, CloudCoverPct: 10}
	warmer := weather.ProviderDay{MaxTempC: 28, MinTempC: 18, WindKph: 24, CloudCoverPct: 30}

	svc, memStore := newService(time.Hour,
		&fakeProvider{name: "a", days: weekOf("a", warm)},
		&fakeProvider{name: "b", days: weekOf("b", warmer)},
	)

	report, err := svc.Refresh(context.Background(), nice)
	require.NoError(t, err)

	require.Len(t, report.Days, 7)
	assert.InDelta(t, 26, report.Days[0].MaxTemp, 1e-9)
	assert.Len(t, report.Days[0].Providers, 2)

	require.Len(t, report.Rankings, 4)
	assert.Equal(t, activity.Skiing, report.Rankings[0].Activity)
	// 26°C, light wind, clear skies: surfing and outdoor both excellent.
	assert.Equal(t, 95, report.Rankings[1].AverageScore)
	assert.Equal(t, 100, report.Rankings[2].AverageScore)

	stored, err := memStore.GetLatest(nice)
	require.NoError(t, err)
	assert.Equal(t, report.GeneratedAt, stored.GeneratedAt)
}

func TestRefreshToleratesPartialProviderFailure(t *testing.T) {
	good := &fakeProvider{name: "a", days: weekOf("a", weather.ProviderDay{MaxTempC: 20})}
	bad := &fakeProvider{name: "b", err: fmt.Errorf("upstream down")}

	svc, _ := newService(time.Hour, good, bad)

	report, err := svc.Refresh(context.Background(), nice)
	require.NoError(t, err)
	assert.Len(t, report.Days, 7)
	assert.Equal(t, []string{"a"}, report.Days[0].Providers)
}

func TestRefreshNoData(t *testing.T) {
	svc, _ := newService(time.Hour, &fakeProvider{name: "a", err: fmt.Errorf("upstream down")})

	_, err := svc.Refresh(context.Background(), nice)
	assert.ErrorIs(t, err, planner.ErrNoData)
}

func TestGetReportUsesFreshStoredReport(t *testing.T) {
	prov := &fakeProvider{name: "a", days: weekOf("a", weather.ProviderDay{MaxTempC: 20})}
	svc, _ := newService(time.Hour, prov)

	_, err := svc.GetReport(context.Background(), nice, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), prov.calls.Load())

	_, err = svc.GetReport(context.Background(), nice, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), prov.calls.Load(), "fresh report should be served from the store")
}

func TestGetReportRecomputesStaleReport(t *testing.T) {
	prov := &fakeProvider{name: "a", days: weekOf("a", weather.ProviderDay{MaxTempC: 20})}
	svc, _ := newService(time.Nanosecond, prov)

	_, err := svc.GetReport(context.Background(), nice, 7)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.GetReport(context.Background(), nice, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), prov.calls.Load())
}

func TestGetReportShorterWindowRecomputesRankings(t *testing.T) {
	// First three days are snowy and cold, the rest warm: the 3-day skiing
	// average must differ from the weekly one.
	days := weekOf("a", weather.ProviderDay{MaxTempC: 24})
	for i := 0; i < 3; i++ {
		days[i].MaxTempC = -2
		days[i].SnowfallCm = 10
	}
	prov := &fakeProvider{name: "a", days: days}
	svc, _ := newService(time.Hour, prov)

	full, err := svc.GetReport(context.Background(), nice, 7)
	require.NoError(t, err)
	short, err := svc.GetReport(context.Background(), nice, 3)
	require.NoError(t, err)

	require.Len(t, short.Days, 3)
	// Skiing scores 80 on snowy days, 0 on warm ones.
	assert.Equal(t, 80, short.Rankings[0].AverageScore)
	assert.Equal(t, 34, full.Rankings[0].AverageScore) // round(240/7)
	assert.Equal(t, int64(1), prov.calls.Load())
}

func TestGetReportValidatesDays(t *testing.T) {
	svc, _ := newService(time.Hour, &fakeProvider{name: "a"})

	_, err := svc.GetReport(context.Background(), nice, 0)
	assert.Error(t, err)
	_, err = svc.GetReport(context.Background(), nice, 8)
	assert.Error(t, err)
}

func TestSortByScore(t *testing.T) {
	rankings := []activity.Ranking{
		{Activity: activity.Skiing, AverageScore: 10},
		{Activity: activity.Surfing, AverageScore: 90},
		{Activity: activity.OutdoorSightseeing, AverageScore: 55},
		{Activity: activity.IndoorSightseeing, AverageScore: 55},
	}

	sorted := planner.SortByScore(rankings)

	assert.Equal(t, activity.Surfing, sorted[0].Activity)
	assert.Equal(t, activity.Skiing, sorted[3].Activity)
	// Stable on ties: outdoor keeps its place before indoor.
	assert.Equal(t, activity.OutdoorSightseeing, sorted[1].Activity)
	// Input order untouched.
	assert.Equal(t, activity.Skiing, rankings[0].Activity)
}
