package services

import "math"

// RatingAggregator computes a provider's rating badge: the mean of all review
// ratings on bookings they served, rounded to one decimal, 0 without reviews.
// Ratings are never cached; callers pass the current review set or its totals.
type RatingAggregator struct{}

func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

func (RatingAggregator) Average(ratings []int) float64 {
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return RatingAggregator{}.AverageOfTotals(sum, int64(len(ratings)))
}

// AverageOfTotals is Average for callers that aggregate in SQL.
func (RatingAggregator) AverageOfTotals(sum, count int64) float64 {
	if count <= 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}
