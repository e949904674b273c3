package activity

import (
	"math"

	"github.com/tripweather/activity-planner/internal/weather"
)

// scoreFunc maps one day's weather to an unclamped suitability value.
// Each activity starts from a baseline and adds or subtracts weighted
// contributions from specific weather fields; the result is clamped to
// [0,100] before rounding.
type scoreFunc func(d weather.DailyWeather) float64

// scorers binds each activity to its scoring function, in the fixed
// enumeration order of All.
var scorers = map[Activity]scoreFunc{
	Skiing:             scoreSkiing,
	Surfing:            scoreSurfing,
	OutdoorSightseeing: scoreOutdoorSightseeing,
	IndoorSightseeing:  scoreIndoorSightseeing,
}

func scoreSkiing(d weather.DailyWeather) float64 {
	score := 0.0
	if d.Snowfall > 0 {
		score += math.Min(50, d.Snowfall*5)
	}
	if d.MaxTemp < 2 {
		score += 30
	} else if d.MaxTemp < 7 {
		score += 15
	}
	if d.WindSpeed > 40 {
		score -= 15
	}
	if d.Precipitation > 5 {
		score -= 10
	}
	return score
}

func scoreSurfing(d weather.DailyWeather) float64 {
	score := 50.0
	// Wind in [35,40] intentionally triggers neither branch.
	if d.WindSpeed > 10 && d.WindSpeed < 35 {
		score += 25
	} else if d.WindSpeed > 40 {
		score -= 20
	}
	if d.MaxTemp > 18 {
		score += 20
	}
	if d.Precipitation > 8 {
		score -= 15
	}
	return score
}

func scoreOutdoorSightseeing(d weather.DailyWeather) float64 {
	score := 60.0
	if d.CloudCover < 40 {
		score += 20
	} else if d.CloudCover > 80 {
		score -= 10
	}
	if d.MaxTemp >= 15 && d.MaxTemp <= 28 {
		score += 20
	} else if d.MaxTemp < 5 || d.MaxTemp > 35 {
		score -= 20
	}
	if d.Precipitation > 0 {
		score -= d.Precipitation * 2
	}
	return score
}

func scoreIndoorSightseeing(d weather.DailyWeather) float64 {
	score := 70.0
	if d.Precipitation > 5 {
		score += 15
	}
	if d.MaxTemp < 5 || d.MaxTemp > 30 {
		score += 15
	}
	// Strict bounds here: a perfectly comfortable day makes the indoor
	// option less attractive.
	if d.Precipitation == 0 && d.CloudCover < 50 && d.MaxTemp > 15 && d.MaxTemp < 25 {
		score -= 20
	}
	return score
}

// DayScoreFor computes the clamped, rounded daily score for one activity.
func DayScoreFor(a Activity, d weather.DailyWeather) int {
	raw := scorers[a](d)
	return int(math.Round(clamp(raw)))
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
