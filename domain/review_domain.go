package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetReviews    = "success get reviews"
	MessageSuccessCreateReview  = "review created successfully"
	MessageSuccessUpdateReview  = "review updated successfully"
	MessageSuccessDeleteReview  = "review deleted successfully"
	MessageSuccessApproveReview = "review approved successfully"
	MessageSuccessVoteReview    = "review vote recorded"

	MessageFailedGetReviews    = "failed to get reviews"
	MessageFailedCreateReview  = "failed to create review"
	MessageFailedUpdateReview  = "failed to update review"
	MessageFailedDeleteReview  = "failed to delete review"
	MessageFailedApproveReview = "failed to approve review"
	MessageFailedVoteReview    = "failed to record review vote"

	ErrReviewNotFound   = errors.New("review not found")
	ErrAlreadyReviewed  = errors.New("recipe already reviewed")
	ErrNotReviewOwner   = errors.New("not authorized to modify this review")
)

type (
	CreateReviewRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment" validate:"required,max=1000"`
	}

	UpdateReviewRequest struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment" validate:"required,max=1000"`
	}

	ReviewResponse struct {
		ID              string    `json:"id"`
		RecipeID        string    `json:"recipe_id"`
		UserID          string    `json:"user_id"`
		UserName        string    `json:"user_name,omitempty"`
		Rating          int       `json:"rating"`
		Comment         string    `json:"comment"`
		Approved        bool      `json:"approved"`
		HelpfulCount    int       `json:"helpful_count"`
		NotHelpfulCount int       `json:"not_helpful_count"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
