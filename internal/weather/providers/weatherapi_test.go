package providers

import "testing"

func TestEstimateCloudCover(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"Sunny", 10},
		{"Clear", 10},
		{"Partly cloudy", 40},
		{"Overcast", 95},
		{"Cloudy", 70},
		{"Moderate rain", 80},
		{"Patchy snow possible", 80},
		{"Thundery outbreaks possible", 90},
		{"", 50},
		{"Unrecognized condition", 50},
	}

	for _, tt := range tests {
		if got := estimateCloudCover(tt.text); got != tt.want {
			t.Errorf("estimateCloudCover(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
