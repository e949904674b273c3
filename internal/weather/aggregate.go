package weather

import "sort"

// aggregateDay combines multiple provider readings for the same calendar date
// into a single DailyWeather by field-wise averaging.
func aggregateDay(date string, readings []ProviderDay) DailyWeather {
	var (
		sumMax    float64
		sumMin    float64
		sumPrecip float64
		sumWind   float64
		sumSnow   float64
		sumCloud  float64
	)

	providers := make([]string, 0, len(readings))

	for _, r := range readings {
		sumMax += r.MaxTempC
		sumMin += r.MinTempC
		sumPrecip += r.PrecipMm
		sumWind += r.WindKph
		sumSnow += r.SnowfallCm
		sumCloud += r.CloudCoverPct

		providers = append(providers, r.ProviderName)
	}

	n := float64(len(readings))

	return DailyWeather{
		Date:          date,
		MaxTemp:       sumMax / n,
		MinTemp:       sumMin / n,
		Precipitation: sumPrecip / n,
		WindSpeed:     sumWind / n,
		Snowfall:      sumSnow / n,
		CloudCover:    sumCloud / n,
		Providers:     providers,
	}
}

// MergeForecasts groups per-provider readings by calendar date, averages each
// group, and returns a date-ascending Forecast truncated to days entries.
func MergeForecasts(readings []ProviderDay, days int) Forecast {
	if len(readings) == 0 {
		return nil
	}

	byDate := make(map[string][]ProviderDay)
	for _, r := range readings {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	forecast := make(Forecast, 0, days)
	for _, d := range dates {
		if len(forecast) >= days {
			break
		}
		forecast = append(forecast, aggregateDay(d, byDate[d]))
	}

	return forecast
}
