package recipe

import (
	"context"
	"errors"
	"fmt"

	"recipe-hub/domain"
	"recipe-hub/entities"
	"recipe-hub/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, role string) error
		DeleteRecipe(ctx context.Context, id string, userID string, role string) error
		ApproveRecipe(ctx context.Context, id string) error
		GetFeaturedRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetTopRatedRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error)
		GetRecipesByCategory(ctx context.Context, category string) ([]domain.RecipeResponse, error)
		GetRecipesByCuisine(ctx context.Context, cuisine string) ([]domain.RecipeResponse, error)
		SearchByIngredients(ctx context.Context, ingredients []string) ([]domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string, role string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipeID := uuid.New()
	recipe := &entities.Recipe{
		ID:          recipeID,
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		CookingTime: req.CookingTime,
		Servings:    req.Servings,
		Calories:    req.Calories,
		Difficulty:  req.Difficulty,
	}

	for i, ingredient := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entities.RecipeIngredient{
			ID:       uuid.New(),
			RecipeID: recipeID,
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
			Position: i,
		})
	}

	for _, instruction := range req.Instructions {
		recipe.Instructions = append(recipe.Instructions, &entities.RecipeInstruction{
			ID:          uuid.New(),
			RecipeID:    recipeID,
			Step:        instruction.Step,
			Description: instruction.Description,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Category != "" {
		recipe.Category = req.Category
	}
	if req.Cuisine != "" {
		recipe.Cuisine = req.Cuisine
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.Calories != nil {
		recipe.Calories = *req.Calories
	}

	// Only admins can feature or approve.
	if role == domain.RoleAdmin {
		if req.Featured != nil {
			recipe.Featured = *req.Featured
		}
		if req.Approved != nil {
			recipe.Approved = *req.Approved
		}
	}

	if req.Ingredients != nil {
		ingredients := make([]*entities.RecipeIngredient, 0, len(req.Ingredients))
		for i, ingredient := range req.Ingredients {
			ingredients = append(ingredients, &entities.RecipeIngredient{
				ID:       uuid.New(),
				RecipeID: recipe.ID,
				Name:     ingredient.Name,
				Quantity: ingredient.Quantity,
				Unit:     ingredient.Unit,
				Position: i,
			})
		}
		if err := s.recipeRepository.ReplaceIngredients(ctx, id, ingredients); err != nil {
			return err
		}
	}

	if req.Instructions != nil {
		instructions := make([]*entities.RecipeInstruction, 0, len(req.Instructions))
		for _, instruction := range req.Instructions {
			instructions = append(instructions, &entities.RecipeInstruction{
				ID:          uuid.New(),
				RecipeID:    recipe.ID,
				Step:        instruction.Step,
				Description: instruction.Description,
			})
		}
		if err := s.recipeRepository.ReplaceInstructions(ctx, id, instructions); err != nil {
			return err
		}
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUserNotAllowed
	}

	if recipe.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) ApproveRecipe(ctx context.Context, id string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	recipe.Approved = true
	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) GetFeaturedRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetFeaturedRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetTopRatedRecipes(ctx context.Context, limit int) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetTopRatedRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, category string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipesByCuisine(ctx context.Context, cuisine string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByCuisine(ctx, cuisine)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) SearchByIngredients(ctx context.Context, ingredients []string) ([]domain.RecipeResponse, error) {
	if len(ingredients) == 0 {
		return nil, domain.ErrNoIngredientsGiven
	}

	recipes, err := s.recipeRepository.SearchByIngredients(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string, role string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if recipe.UserID.String() != userID && role != domain.RoleAdmin {
		return "", domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())

	var objectKey string
	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}

	return recipe.ImageURL, nil
}

// ToRecipeResponse is shared with the meal plan and recommendation services.
func ToRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:            recipe.ID.String(),
		Name:          recipe.Name,
		Description:   recipe.Description,
		Category:      recipe.Category,
		Cuisine:       recipe.Cuisine,
		CookingTime:   recipe.CookingTime,
		Servings:      recipe.Servings,
		Calories:      recipe.Calories,
		Difficulty:    recipe.Difficulty,
		ImageURL:      recipe.ImageURL,
		Featured:      recipe.Featured,
		Approved:      recipe.Approved,
		AverageRating: recipe.AverageRating,
		NumReviews:    recipe.NumReviews,
		CookCount:     recipe.CookCount,
		CreatedAt:     recipe.CreatedAt,
	}
}

func toRecipeDetailResponse(recipe *entities.Recipe) domain.RecipeDetailResponse {
	res := domain.RecipeDetailResponse{
		RecipeResponse: ToRecipeResponse(recipe),
	}

	for _, ingredient := range recipe.Ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
		})
	}

	for _, instruction := range recipe.Instructions {
		res.Instructions = append(res.Instructions, domain.InstructionResponse{
			Step:        instruction.Step,
			Description: instruction.Description,
		})
	}

	return res
}
