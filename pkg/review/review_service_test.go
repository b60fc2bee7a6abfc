package review

import (
	"testing"

	"recipe-hub/entities"

	"github.com/stretchr/testify/assert"
)

func reviewsWithRatings(ratings ...int) []*entities.Review {
	reviews := make([]*entities.Review, 0, len(ratings))
	for _, rating := range ratings {
		reviews = append(reviews, &entities.Review{Rating: rating})
	}
	return reviews
}

func TestAverageRatingNoReviews(t *testing.T) {
	assert.Zero(t, AverageRating(nil))
	assert.Zero(t, AverageRating([]*entities.Review{}))
}

func TestAverageRatingSingleReview(t *testing.T) {
	assert.Equal(t, 5.0, AverageRating(reviewsWithRatings(5)))
	assert.Equal(t, 1.0, AverageRating(reviewsWithRatings(1)))
}

func TestAverageRatingMean(t *testing.T) {
	assert.Equal(t, 4.5, AverageRating(reviewsWithRatings(4, 5)))
	assert.Equal(t, 3.0, AverageRating(reviewsWithRatings(1, 3, 5)))
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	// 11/3 = 3.666...
	assert.Equal(t, 3.7, AverageRating(reviewsWithRatings(3, 4, 4)))
	// 10/3 = 3.333...
	assert.Equal(t, 3.3, AverageRating(reviewsWithRatings(3, 3, 4)))
	// 13/6 = 2.1666...
	assert.Equal(t, 2.2, AverageRating(reviewsWithRatings(1, 2, 2, 2, 3, 3)))
}
