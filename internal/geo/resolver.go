package geo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/tripweather/activity-planner/internal/weather"
)

// ErrDisabled is returned when no geocoding API key is configured.
var ErrDisabled = errors.New("geocoding disabled: no api key configured")

// Resolver resolves City/Country pairs to coordinates via the Google
// geocoding API, caching results so each location is resolved at most once.
type Resolver struct {
	mu      sync.RWMutex
	cache   map[string][2]float64
	enabled bool
}

// NewResolver configures the geocoder with the given API key. An empty key
// yields a disabled resolver; lookups then fail with ErrDisabled and callers
// fall back to providers that accept city names directly.
func NewResolver(apiKey string) *Resolver {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &Resolver{
		cache:   make(map[string][2]float64),
		enabled: apiKey != "",
	}
}

// Resolve returns the coordinates for a location, from cache when possible.
func (r *Resolver) Resolve(loc weather.Location) (lat, lon float64, err error) {
	if !r.enabled {
		return 0, 0, ErrDisabled
	}

	key := loc.Key()

	r.mu.RLock()
	coords, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return coords[0], coords[1], nil
	}

	result, err := geocoder.Geocoding(geocoder.Address{
		City:    loc.City,
		Country: loc.Country,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding %s: %w", key, err)
	}

	r.mu.Lock()
	r.cache[key] = [2]float64{result.Latitude, result.Longitude}
	r.mu.Unlock()

	return result.Latitude, result.Longitude, nil
}
