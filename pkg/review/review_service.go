package review

import (
	"context"
	"errors"
	"math"

	"recipe-hub/domain"
	"recipe-hub/entities"
	"recipe-hub/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		GetReviewsByRecipe(ctx context.Context, recipeID string, page, limit int) ([]domain.ReviewResponse, int64, error)
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error)
		UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, userID string) error
		DeleteReview(ctx context.Context, id string, userID string, role string) error
		ApproveReview(ctx context.Context, id string) error
		VoteReview(ctx context.Context, id string, userID string, helpful bool) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *reviewService) GetReviewsByRecipe(ctx context.Context, recipeID string, page, limit int) ([]domain.ReviewResponse, int64, error) {
	reviews, count, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		res = append(res, toReviewResponse(review))
	}
	return res, count, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ReviewResponse{}, err
	}
	if !target.Approved {
		return domain.ReviewResponse{}, domain.ErrRecipeNotApproved
	}

	if _, err := s.reviewRepository.GetReviewByUserAndRecipe(ctx, userID, req.RecipeID); err == nil {
		return domain.ReviewResponse{}, domain.ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReviewResponse{}, err
	}

	review := &entities.Review{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Approved: true,
	}

	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	if err := s.recalculateRating(ctx, req.RecipeID); err != nil {
		return domain.ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, userID string) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if review.UserID.String() != userID {
		return domain.ErrNotReviewOwner
	}

	review.Rating = req.Rating
	review.Comment = req.Comment

	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return err
	}

	return s.recalculateRating(ctx, review.RecipeID.String())
}

func (s *reviewService) DeleteReview(ctx context.Context, id string, userID string, role string) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if review.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrNotReviewOwner
	}

	if err := s.reviewRepository.DeleteReview(ctx, id); err != nil {
		return err
	}

	return s.recalculateRating(ctx, review.RecipeID.String())
}

func (s *reviewService) ApproveReview(ctx context.Context, id string) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	review.Approved = true
	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return err
	}

	return s.recalculateRating(ctx, review.RecipeID.String())
}

// VoteReview records a helpful or not-helpful vote. Voting again with the
// same value is a no-op; voting the other way moves the vote.
func (s *reviewService) VoteReview(ctx context.Context, id string, userID string, helpful bool) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	vote, err := s.reviewRepository.GetVote(ctx, id, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vote = &entities.ReviewVote{
			ID:       uuid.New(),
			ReviewID: review.ID,
			UserID:   userUUID,
			Helpful:  helpful,
		}
		if helpful {
			review.HelpfulCount++
		} else {
			review.NotHelpfulCount++
		}
	case err != nil:
		return err
	case vote.Helpful == helpful:
		return nil
	default:
		vote.Helpful = helpful
		if helpful {
			review.HelpfulCount++
			review.NotHelpfulCount--
		} else {
			review.HelpfulCount--
			review.NotHelpfulCount++
		}
	}

	if err := s.reviewRepository.SaveVote(ctx, vote); err != nil {
		return err
	}
	return s.reviewRepository.UpdateReview(ctx, review)
}

// recalculateRating recomputes the recipe's average from its approved
// reviews, rounded to one decimal place.
func (s *reviewService) recalculateRating(ctx context.Context, recipeID string) error {
	reviews, err := s.reviewRepository.GetApprovedReviewsByRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	average := AverageRating(reviews)
	return s.recipeRepository.UpdateRating(ctx, recipeID, average, len(reviews))
}

// AverageRating returns the mean rating rounded to one decimal, 0 for no
// reviews.
func AverageRating(reviews []*entities.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var total int
	for _, review := range reviews {
		total += review.Rating
	}

	average := float64(total) / float64(len(reviews))
	return math.Round(average*10) / 10
}

func toReviewResponse(review *entities.Review) domain.ReviewResponse {
	res := domain.ReviewResponse{
		ID:              review.ID.String(),
		RecipeID:        review.RecipeID.String(),
		UserID:          review.UserID.String(),
		Rating:          review.Rating,
		Comment:         review.Comment,
		Approved:        review.Approved,
		HelpfulCount:    review.HelpfulCount,
		NotHelpfulCount: review.NotHelpfulCount,
		CreatedAt:       review.CreatedAt,
	}
	if review.User != nil {
		res.UserName = review.User.Name
	}
	return res
}
