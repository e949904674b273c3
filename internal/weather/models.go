package weather

// DateLayout is the calendar-date format used throughout the service.
// All daily readings are keyed by UTC calendar date.
const DateLayout = "2006-01-02"

// Location represents a logical place for which we build activity reports.
// City/Country must be provided; Lat/Lon are filled in by geocoding when
// available (some providers require coordinates).
type Location struct {
	City    string   `json:"city"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l Location) Key() string {
	return l.City + ":" + l.Country
}

// DailyWeather is the normalized, aggregated forecast for one calendar day.
// Units are fixed at the provider boundary: Celsius, km/h, mm, cm, percent.
type DailyWeather struct {
	Date          string  `json:"date"` // YYYY-MM-DD, UTC
	MaxTemp       float64 `json:"maxTempC"`
	MinTemp       float64 `json:"minTempC"`
	Precipitation float64 `json:"precipitationMm"`
	WindSpeed     float64 `json:"windSpeedKph"`
	Snowfall      float64 `json:"snowfallCm"`
	CloudCover    float64 `json:"cloudCoverPct"`

	// Providers contributing to this day's aggregate.
	Providers []string `json:"providers,omitempty"`
}

// Forecast is a multi-day daily forecast, ordered by Date ascending.
type Forecast []DailyWeather
