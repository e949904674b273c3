package activity

import "fmt"

// Activity identifies one of the fixed set of activities for which
// suitability is scored.
type Activity string

const (
	Skiing             Activity = "Skiing"
	Surfing            Activity = "Surfing"
	OutdoorSightseeing Activity = "Outdoor Sightseeing"
	IndoorSightseeing  Activity = "Indoor Sightseeing"
)

// All lists the activities in their fixed enumeration order. Rankings are
// produced in this order; sorting by score is a presentation concern.
var All = []Activity{Skiing, Surfing, OutdoorSightseeing, IndoorSightseeing}

// DayScore is one activity's suitability rating for one forecast day.
type DayScore struct {
	Date       string `json:"date"`
	Score      int    `json:"score"`
	Conditions string `json:"conditions"`
}

// Ranking aggregates one activity's daily scores over the forecast window.
type Ranking struct {
	Activity       Activity   `json:"activity"`
	AverageScore   int        `json:"averageScore"`
	DailyScores    []DayScore `json:"dailyScores"`
	Recommendation string     `json:"recommendation"`
}

// classify maps a 0-100 score onto a coarse condition label.
func classify(score int) string {
	switch {
	case score >= 75:
		return "Great"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "OK"
	default:
		return "Poor"
	}
}

// recommend produces the weekly recommendation text for an activity from its
// average score.
func recommend(a Activity, avg int) string {
	switch {
	case avg >= 70:
		return fmt.Sprintf("Perfect week for %s!", a)
	case avg >= 50:
		return fmt.Sprintf("Decent conditions for %s this week.", a)
	default:
		return fmt.Sprintf("Not the best week for %s.", a)
	}
}
