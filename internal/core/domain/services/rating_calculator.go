package services

import (
	"math"

	"riderspool/internal/core/domain/model/interview"
)

// RatingCalculator is a domain service computing a provider's aggregate
// rating as the arithmetic mean of all feedback ratings, rounded to two
// decimal places (half away from zero).
type RatingCalculator struct{}

// NewRatingCalculator creates a new RatingCalculator instance.
func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Mean computes the rounded mean rating of the given feedbacks.
// An empty slice yields 0.
func (c RatingCalculator) Mean(feedbacks []*interview.Feedback) float64 {
	if len(feedbacks) == 0 {
		return 0
	}

	sum := 0
	for _, f := range feedbacks {
		sum += f.Rating()
	}

	mean := float64(sum) / float64(len(feedbacks))
	return math.Round(mean*100) / 100
}
