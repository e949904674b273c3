package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/tripweather/activity-planner/internal/common"
	"github.com/tripweather/activity-planner/internal/weather"
)

// WeatherAPIProvider fetches daily forecasts from WeatherAPI's forecast.json
// endpoint. Accepts either "city,country" or "lat,lon" queries.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1/forecast.json",
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newCircuit("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) FetchDaily(ctx context.Context, loc weather.Location, days int) ([]weather.ProviderDay, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("weatherapi api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		// WeatherAPI uses "q" for location; it accepts "city,country" or "lat,lon".
		if loc.Lat != nil && loc.Lon != nil {
			values.Set("q", fmt.Sprintf("%f,%f", *loc.Lat, *loc.Lon))
		} else {
			q := loc.City
			if loc.Country != "" {
				q = fmt.Sprintf("%s,%s", loc.City, loc.Country)
			}
			values.Set("q", q)
		}
		values.Set("days", strconv.Itoa(days))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Forecast struct {
			ForecastDay []struct {
				Date string `json:"date"`
				Day  struct {
					MaxTempC     float64 `json:"maxtemp_c"`
					MinTempC     float64 `json:"mintemp_c"`
					TotalPrecip  float64 `json:"totalprecip_mm"`
					MaxWindKph   float64 `json:"maxwind_kph"`
					TotalSnowCm  float64 `json:"totalsnow_cm"`
					AvgHumidity  float64 `json:"avghumidity"`
					ChanceOfRain float64 `json:"daily_chance_of_rain"`
					Condition    struct {
						Text string `json:"text"`
					} `json:"condition"`
				} `json:"day"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if len(payload.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("weatherapi returned no forecast days")
	}

	readings := make([]weather.ProviderDay, 0, len(payload.Forecast.ForecastDay))
	for _, fd := range payload.Forecast.ForecastDay {
		readings = append(readings, weather.ProviderDay{
			ProviderName:  p.name,
			Date:          fd.Date,
			MaxTempC:      fd.Day.MaxTempC,
			MinTempC:      fd.Day.MinTempC,
			PrecipMm:      fd.Day.TotalPrecip,
			WindKph:       fd.Day.MaxWindKph,
			SnowfallCm:    fd.Day.TotalSnowCm,
			CloudCoverPct: estimateCloudCover(fd.Day.Condition.Text),
		})
	}

	return readings, nil
}

// estimateCloudCover maps WeatherAPI's daily condition text onto an
// approximate cloud cover percentage, since the daily summary carries no
// numeric cloud field.
func estimateCloudCover(text string) float64 {
	t := strings.ToLower(text)
	switch {
	case t == "":
		return 50
	case common.HasAny(t, "sunny", "clear"):
		return 10
	case common.HasAny(t, "partly cloudy", "partly"):
		return 40
	case common.HasAny(t, "overcast"):
		return 95
	case common.HasAny(t, "thunder", "storm", "blizzard"):
		return 90
	case common.HasAny(t, "rain", "shower", "drizzle", "snow", "sleet", "mist", "fog"):
		return 80
	case common.HasAny(t, "cloud"):
		return 70
	default:
		return 50
	}
}
