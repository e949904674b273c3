package weather

import (
	"context"
)

// ProviderDay represents a single provider's normalized daily reading that can
// be aggregated into a DailyWeather.
type ProviderDay struct {
	ProviderName string
	Date         string // YYYY-MM-DD, UTC

	MaxTempC      float64
	MinTempC      float64
	PrecipMm      float64
	WindKph       float64
	SnowfallCm    float64
	CloudCoverPct float64
}

// ForecastProvider abstracts a daily-forecast data source
// (e.g. Open-Meteo, WeatherAPI).
type ForecastProvider interface {
	Name() string
	FetchDaily(ctx context.Context, loc Location, days int) ([]ProviderDay, error)
}
