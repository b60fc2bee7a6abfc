package recommendation

import (
	"context"
	"errors"

	"recipe-hub/domain"
	"recipe-hub/entities"
	"recipe-hub/pkg/recipe"
	"recipe-hub/pkg/review"
	"recipe-hub/pkg/user"

	"gorm.io/gorm"
)

type (
	RecommendationService interface {
		GetRecommendations(ctx context.Context, userID string, limit int) ([]domain.RecipeResponse, error)
		GetSimilarRecipes(ctx context.Context, recipeID string, limit int) ([]domain.RecipeResponse, error)
		GetTrendingRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetSeasonalRecipes(ctx context.Context, season string, limit int) ([]domain.RecipeResponse, error)
		GetRandomRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetRecipesByCategory(ctx context.Context, userID, category string) ([]domain.RecipeResponse, error)
		GetRecipesByCuisine(ctx context.Context, userID, cuisine string) ([]domain.RecipeResponse, error)
	}

	recommendationService struct {
		recipeRepository recipe.RecipeRepository
		reviewRepository review.ReviewRepository
		userRepository   user.UserRepository
	}
)

func NewRecommendationService(recipeRepository recipe.RecipeRepository, reviewRepository review.ReviewRepository, userRepository user.UserRepository) RecommendationService {
	return &recommendationService{
		recipeRepository: recipeRepository,
		reviewRepository: reviewRepository,
		userRepository:   userRepository,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, userID string, limit int) ([]domain.RecipeResponse, error) {
	history, err := s.userRepository.GetCookingHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.reviewRepository.GetUserApprovedRatings(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.recipeRepository.GetApprovedRecipes(ctx)
	if err != nil {
		return nil, err
	}

	recommended, err := Recommend(history, ratings, candidates, limit)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recommended), nil
}

func (s *recommendationService) GetSimilarRecipes(ctx context.Context, recipeID string, limit int) ([]domain.RecipeResponse, error) {
	reference, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	candidates, err := s.recipeRepository.GetApprovedRecipes(ctx)
	if err != nil {
		return nil, err
	}

	similar, err := SimilarRecipes(reference, candidates, limit)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(similar), nil
}

func (s *recommendationService) GetTrendingRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	candidates, err := s.recipeRepository.GetApprovedRecipes(ctx)
	if err != nil {
		return nil, err
	}

	trending, err := TrendingRecipes(candidates, limit)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(trending), nil
}

func (s *recommendationService) GetSeasonalRecipes(ctx context.Context, season string, limit int) ([]domain.RecipeResponse, error) {
	candidates, err := s.recipeRepository.GetApprovedRecipes(ctx)
	if err != nil {
		return nil, err
	}

	seasonal, err := SeasonalRecipes(candidates, season, limit)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(seasonal), nil
}

func (s *recommendationService) GetRandomRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	recipes, err := s.recipeRepository.GetRandomRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

// GetRecipesByCategory returns the category's recipes reordered by the
// user's cuisine preferences when a cooking history exists.
func (s *recommendationService) GetRecipesByCategory(ctx context.Context, userID, category string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	history, err := s.userRepository.GetCookingHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(history) > 0 {
		recipes = RankByCuisinePreference(BuildPreferenceProfile(history), recipes)
	}
	return toRecipeResponses(recipes), nil
}

// GetRecipesByCuisine mirrors GetRecipesByCategory with the axes swapped.
func (s *recommendationService) GetRecipesByCuisine(ctx context.Context, userID, cuisine string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByCuisine(ctx, cuisine)
	if err != nil {
		return nil, err
	}

	history, err := s.userRepository.GetCookingHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(history) > 0 {
		recipes = RankByCategoryPreference(BuildPreferenceProfile(history), recipes)
	}
	return toRecipeResponses(recipes), nil
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, recipe.ToRecipeResponse(r))
	}
	return res
}
