package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessApproveRecipe   = "recipe approved successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedApproveRecipe   = "failed to approve recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"
	MessageFailedSearchRecipes   = "failed to search recipes"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrRecipeNotApproved  = errors.New("recipe not approved")
	ErrNoIngredientsGiven = errors.New("please provide ingredients to search")
)

type (
	IngredientRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
		Unit     string `json:"unit" validate:"required"`
	}

	InstructionRequest struct {
		Step        int    `json:"step" validate:"required,min=1"`
		Description string `json:"description" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name         string               `json:"name" validate:"required,max=100"`
		Description  string               `json:"description" validate:"required"`
		Ingredients  []IngredientRequest  `json:"ingredients" validate:"required,dive"`
		Instructions []InstructionRequest `json:"instructions" validate:"required,dive"`
		Category     string               `json:"category" validate:"required,oneof=Appetizer 'Main Course' Dessert Snack Beverage Salad Soup Breakfast"`
		Cuisine      string               `json:"cuisine" validate:"required"`
		CookingTime  int                  `json:"cooking_time" validate:"required,min=0"`
		Servings     int                  `json:"servings" validate:"required,min=1"`
		Calories     int                  `json:"calories" validate:"required,min=0"`
		Difficulty   string               `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	}

	UpdateRecipeRequest struct {
		Name         string               `json:"name" validate:"omitempty,max=100"`
		Description  string               `json:"description" validate:"omitempty"`
		Ingredients  []IngredientRequest  `json:"ingredients" validate:"omitempty,dive"`
		Instructions []InstructionRequest `json:"instructions" validate:"omitempty,dive"`
		Category     string               `json:"category" validate:"omitempty,oneof=Appetizer 'Main Course' Dessert Snack Beverage Salad Soup Breakfast"`
		Cuisine      string               `json:"cuisine" validate:"omitempty"`
		CookingTime  *int                 `json:"cooking_time" validate:"omitempty,min=0"`
		Servings     *int                 `json:"servings" validate:"omitempty,min=1"`
		Calories     *int                 `json:"calories" validate:"omitempty,min=0"`
		Difficulty   string               `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		Featured     *bool                `json:"featured" validate:"omitempty"`
		Approved     *bool                `json:"approved" validate:"omitempty"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeFilter struct {
		Keyword    string
		Category   string
		Cuisine    string
		Difficulty string
	}

	RecipeResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Description   string    `json:"description"`
		Category      string    `json:"category"`
		Cuisine       string    `json:"cuisine"`
		CookingTime   int       `json:"cooking_time"`
		Servings      int       `json:"servings"`
		Calories      int       `json:"calories"`
		Difficulty    string    `json:"difficulty"`
		ImageURL      string    `json:"image_url,omitempty"`
		Featured      bool      `json:"featured"`
		Approved      bool      `json:"approved"`
		AverageRating float64   `json:"average_rating"`
		NumReviews    int       `json:"num_reviews"`
		CookCount     int       `json:"cook_count"`
		CreatedAt     time.Time `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients  []IngredientResponse  `json:"ingredients"`
		Instructions []InstructionResponse `json:"instructions"`
	}

	IngredientResponse struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
	}

	InstructionResponse struct {
		Step        int    `json:"step"`
		Description string `json:"description"`
	}
)
