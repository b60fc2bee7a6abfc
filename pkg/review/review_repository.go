package review

import (
	"context"

	"recipe-hub/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByID(ctx context.Context, id string) (*entities.Review, error)
		GetReviewByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.Review, error)
		GetReviewsByRecipe(ctx context.Context, recipeID string, page, limit int) ([]*entities.Review, int64, error)
		GetApprovedReviewsByRecipe(ctx context.Context, recipeID string) ([]*entities.Review, error)
		GetUserApprovedRatings(ctx context.Context, userID string) (map[uuid.UUID]int, error)
		UpdateReview(ctx context.Context, review *entities.Review) error
		DeleteReview(ctx context.Context, id string) error
		GetVote(ctx context.Context, reviewID, userID string) (*entities.ReviewVote, error)
		SaveVote(ctx context.Context, vote *entities.ReviewVote) error
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviewByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviewsByRecipe(ctx context.Context, recipeID string, page, limit int) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("recipe_id = ? AND approved = ?", recipeID, true)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("User").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) GetApprovedReviewsByRecipe(ctx context.Context, recipeID string) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND approved = ?", recipeID, true).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetUserApprovedRatings maps recipe id to the rating the user gave it,
// approved reviews only. The recommendation engine consumes this.
func (r *reviewRepository) GetUserApprovedRatings(ctx context.Context, userID string) (map[uuid.UUID]int, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND approved = ?", userID, true).
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	ratings := make(map[uuid.UUID]int, len(reviews))
	for _, review := range reviews {
		ratings[review.RecipeID] = review.Rating
	}
	return ratings, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&entities.ReviewVote{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Review{}).Error
	})
}

func (r *reviewRepository) GetVote(ctx context.Context, reviewID, userID string) (*entities.ReviewVote, error) {
	var vote entities.ReviewVote
	if err := r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *reviewRepository) SaveVote(ctx context.Context, vote *entities.ReviewVote) error {
	return r.db.WithContext(ctx).Save(vote).Error
}
