package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeForecastsAveragesPerDate(t *testing.T) {
	readings := []ProviderDay{
		{ProviderName: "openmeteo", Date: "2026-03-02", MaxTempC: 10, MinTempC: 2, PrecipMm: 4, WindKph: 20, SnowfallCm: 0, CloudCoverPct: 60},
		{ProviderName: "weatherapi", Date: "2026-03-02", MaxTempC: 12, MinTempC: 4, PrecipMm: 2, WindKph: 30, SnowfallCm: 0, CloudCoverPct: 80},
		{ProviderName: "openmeteo", Date: "2026-03-03", MaxTempC: 8, MinTempC: 1, PrecipMm: 0, WindKph: 15, SnowfallCm: 3, CloudCoverPct: 20},
	}

	forecast := MergeForecasts(readings, 7)
	require.Len(t, forecast, 2)

	first := forecast[0]
	assert.Equal(t, "2026-03-02", first.Date)
	assert.InDelta(t, 11, first.MaxTemp, 1e-9)
	assert.InDelta(t, 3, first.MinTemp, 1e-9)
	assert.InDelta(t, 3, first.Precipitation, 1e-9)
	assert.InDelta(t, 25, first.WindSpeed, 1e-9)
	assert.InDelta(t, 70, first.CloudCover, 1e-9)
	assert.ElementsMatch(t, []string{"openmeteo", "weatherapi"}, first.Providers)

	second := forecast[1]
	assert.Equal(t, "2026-03-03", second.Date)
	assert.InDelta(t, 3, second.Snowfall, 1e-9)
	assert.Equal(t, []string{"openmeteo"}, second.Providers)
}

func TestMergeForecastsSortsAndTruncates(t *testing.T) {
	readings := []ProviderDay{
		{ProviderName: "openmeteo", Date: "2026-03-05"},
		{ProviderName: "openmeteo", Date: "2026-03-03"},
		{ProviderName: "openmeteo", Date: "2026-03-04"},
	}

	forecast := MergeForecasts(readings, 2)
	require.Len(t, forecast, 2)
	assert.Equal(t, "2026-03-03", forecast[0].Date)
	assert.Equal(t, "2026-03-04", forecast[1].Date)
}

func TestMergeForecastsEmpty(t *testing.T) {
	assert.Nil(t, MergeForecasts(nil, 7))
}
