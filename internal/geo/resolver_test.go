package geo

import (
	"errors"
	"testing"

	"github.com/tripweather/activity-planner/internal/weather"
)

func TestResolveDisabledWithoutAPIKey(t *testing.T) {
	r := NewResolver("")

	_, _, err := r.Resolve(weather.Location{City: "Oslo", Country: "NO"})
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
