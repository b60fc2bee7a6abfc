package recipe

import (
	"context"
	"strings"

	"recipe-hub/domain"
	"recipe-hub/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error)
		GetFeaturedRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetTopRatedRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetApprovedRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRandomRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, category string) ([]*entities.Recipe, error)
		GetRecipesByCuisine(ctx context.Context, cuisine string) ([]*entities.Recipe, error)
		SearchByIngredients(ctx context.Context, ingredients []string) ([]*entities.Recipe, error)
		ReplaceIngredients(ctx context.Context, recipeID string, ingredients []*entities.RecipeIngredient) error
		ReplaceInstructions(ctx context.Context, recipeID string, instructions []*entities.RecipeInstruction) error
		IncrementCookCount(ctx context.Context, id string) error
		UpdateRating(ctx context.Context, id string, averageRating float64, numReviews int) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Instructions", func(db *gorm.DB) *gorm.DB {
			return db.Order("step asc")
		}).
		Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Ingredients", "Instructions").Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeInstruction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("approved = ?", true)

	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetFeaturedRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("approved = ? AND featured = ?", true, true).
		Order("average_rating desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetTopRatedRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("average_rating desc, num_reviews desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetApprovedRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRandomRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("RANDOM()").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, category string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("approved = ? AND category = ?", true, category).
		Order("average_rating desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCuisine(ctx context.Context, cuisine string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("approved = ? AND cuisine = ?", true, cuisine).
		Order("average_rating desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SearchByIngredients returns approved recipes containing every requested
// ingredient, matched by substring on the ingredient name.
func (r *recipeRepository) SearchByIngredients(ctx context.Context, ingredients []string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("approved = ?", true)

	for _, ingredient := range ingredients {
		pattern := "%" + strings.ToLower(strings.TrimSpace(ingredient)) + "%"
		query = query.Where(
			"EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = recipes.id AND LOWER(ri.name) LIKE ?)",
			pattern,
		)
	}

	if err := query.Order("average_rating desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID string, ingredients []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		return tx.Create(&ingredients).Error
	})
}

func (r *recipeRepository) ReplaceInstructions(ctx context.Context, recipeID string, instructions []*entities.RecipeInstruction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeInstruction{}).Error; err != nil {
			return err
		}
		if len(instructions) == 0 {
			return nil
		}
		return tx.Create(&instructions).Error
	})
}

func (r *recipeRepository) IncrementCookCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("cook_count", gorm.Expr("cook_count + 1")).Error
}

func (r *recipeRepository) UpdateRating(ctx context.Context, id string, averageRating float64, numReviews int) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": averageRating,
			"num_reviews":    numReviews,
		}).Error
}
