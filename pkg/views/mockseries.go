package views

import (
	"math"
	"math/rand"
	"time"
)

// Supported trend ranges in days
var trendRanges = []int{7, 14, 30}

const defaultTrendRange = 30

// MockDemandPoint is one day of demonstration data
type MockDemandPoint struct {
	Date       string  `json:"date"`
	Predicted  int     `json:"predicted"`
	Confidence float64 `json:"confidence"`
	Actual     *int    `json:"actual"`
}

// TrendRange returns days when it is a supported range, else 30
func TrendRange(days int) int {
	for _, r := range trendRanges {
		if r == days {
			return days
		}
	}
	return defaultTrendRange
}

// MockDemandSeries generates demonstration chart data: a sine wave around 100 with
// bounded noise. It is placeholder data for the trend chart, not a forecast. The first
// seven days also carry an "actual" value.
func MockDemandSeries(days int, start time.Time, rng *rand.Rand) []MockDemandPoint {
	days = TrendRange(days)
	points := make([]MockDemandPoint, 0, days)
	for i := 0; i < days; i++ {
		base := 100 + math.Sin(float64(i)*0.2)*20
		variance := rng.Float64()*30 - 15

		point := MockDemandPoint{
			Date:       start.AddDate(0, 0, i).Format(time.DateOnly),
			Predicted:  nonNegative(base + variance),
			Confidence: 85 + rng.Float64()*10,
		}
		if i < 7 {
			actual := nonNegative(base + variance*0.8)
			point.Actual = &actual
		}
		points = append(points, point)
	}
	return points
}

func nonNegative(v float64) int {
	return int(math.Max(0, math.Round(v)))
}
