package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/tripweather/activity-planner/internal/weather"
)

// OpenMeteoProvider fetches daily forecasts from Open-Meteo. No API key is
// required, but the API only accepts coordinates, so the location must be
// geocoded first.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newCircuit("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) FetchDaily(ctx context.Context, loc weather.Location, days int) ([]weather.ProviderDay, error) {
	if loc.Lat == nil || loc.Lon == nil {
		return nil, fmt.Errorf("openmeteo requires latitude and longitude")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", *loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", *loc.Lon))
		values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,snowfall_sum,cloudcover_mean")
		values.Set("timezone", "UTC")
		values.Set("forecast_days", strconv.Itoa(days))

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
		Daily struct {
			Time           []string  `json:"time"`
			TempMax        []float64 `json:"temperature_2m_max"`
			TempMin        []float64 `json:"temperature_2m_min"`
			PrecipitationS []float64 `json:"precipitation_sum"`
			WindSpeedMax   []float64 `json:"windspeed_10m_max"`
			SnowfallSum    []float64 `json:"snowfall_sum"`
			CloudCoverMean []float64 `json:"cloudcover_mean"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	d := payload.Daily
	if len(d.Time) == 0 {
		return nil, fmt.Errorf("openmeteo returned no daily data")
	}

	readings := make([]weather.ProviderDay, 0, len(d.Time))
	for i, date := range d.Time {
		if i >= len(d.TempMax) || i >= len(d.TempMin) || i >= len(d.PrecipitationS) ||
			i >= len(d.WindSpeedMax) || i >= len(d.SnowfallSum) || i >= len(d.CloudCoverMean) {
			break
		}

		readings = append(readings, weather.ProviderDay{
			ProviderName:  p.name,
			Date:          date,
			MaxTempC:      d.TempMax[i],
			MinTempC:      d.TempMin[i],
			PrecipMm:      d.PrecipitationS[i],
			WindKph:       d.WindSpeedMax[i], // Open-Meteo reports km/h by default
			SnowfallCm:    d.SnowfallSum[i],
			CloudCoverPct: d.CloudCoverMean[i],
		})
	}

	return readings, nil
}
