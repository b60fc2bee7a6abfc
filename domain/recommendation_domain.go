package domain

import "errors"

var (
	MessageSuccessGetRecommendations = "success get recommendations"
	MessageFailedGetRecommendations  = "failed to get recommendations"

	ErrInvalidLimit = errors.New("limit must not be negative")
)
