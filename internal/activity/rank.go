package activity

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tripweather/activity-planner/internal/weather"
)

// ErrInvalidInput is returned when the weather sequence is empty or a day has
// missing or non-numeric fields. Scoring has no defined partial-data
// behavior, so no partial result is returned alongside it.
var ErrInvalidInput = errors.New("invalid weather input")

// Rank computes, for every activity, the per-day scores and condition labels
// for each day in days (preserving input order), the rounded mean of the
// daily scores, and the recommendation text. Rankings come back in the fixed
// activity enumeration order; callers that want a by-score ordering sort the
// result themselves.
func Rank(days []weather.DailyWeather) ([]Ranking, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: empty weather sequence", ErrInvalidInput)
	}
	for i, d := range days {
		if err := validateDay(d); err != nil {
			return nil, fmt.Errorf("%w: day %d (%q): %v", ErrInvalidInput, i, d.Date, err)
		}
	}

	rankings := make([]Ranking, 0, len(All))
	for _, a := range All {
		daily := make([]DayScore, 0, len(days))
		sum := 0
		for _, d := range days {
			score := DayScoreFor(a, d)
			sum += score
			daily = append(daily, DayScore{
				Date:       d.Date,
				Score:      score,
				Conditions: classify(score),
			})
		}

		avg := int(math.Round(float64(sum) / float64(len(days))))

		rankings = append(rankings, Ranking{
			Activity:       a,
			AverageScore:   avg,
			DailyScores:    daily,
			Recommendation: recommend(a, avg),
		})
	}

	return rankings, nil
}

func validateDay(d weather.DailyWeather) error {
	if _, err := time.Parse(weather.DateLayout, d.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}

	fields := map[string]float64{
		"maxTemp":       d.MaxTemp,
		"minTemp":       d.MinTemp,
		"precipitation": d.Precipitation,
		"windSpeed":     d.WindSpeed,
		"snowfall":      d.Snowfall,
		"cloudCover":    d.CloudCover,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("field %s is not a finite number", name)
		}
	}

	if d.Precipitation < 0 || d.WindSpeed < 0 || d.Snowfall < 0 {
		return fmt.Errorf("precipitation, windSpeed and snowfall must be non-negative")
	}
	if d.CloudCover < 0 || d.CloudCover > 100 {
		return fmt.Errorf("cloudCover must be within [0,100]")
	}

	return nil
}
