package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, 3*time.Hour, cfg.ReportMaxAge)
	assert.Equal(t, 24, cfg.StoreMaxHistory)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.Locations)
}

func TestLoadLocations(t *testing.T) {
	t.Setenv("WEATHER_LOCATION_CITY", "Paris, Oslo")
	t.Setenv("WEATHER_LOCATION_COUNTRY", "FR,NO")

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Locations, 2)
	assert.Equal(t, "Paris", cfg.Locations[0].City)
	assert.Equal(t, "FR", cfg.Locations[0].Country)
	assert.Equal(t, "Oslo", cfg.Locations[1].City)
	assert.Equal(t, "NO", cfg.Locations[1].Country)
}

func TestLoadMismatchedLocations(t *testing.T) {
	t.Setenv("WEATHER_LOCATION_CITY", "Paris,Oslo")
	t.Setenv("WEATHER_LOCATION_COUNTRY", "FR")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "often")

	_, err := Load()
	assert.Error(t, err)
}
