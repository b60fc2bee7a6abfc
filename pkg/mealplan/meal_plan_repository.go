package mealplan

import (
	"context"
	"time"

	"recipe-hub/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string) error
		GetMealPlansByUser(ctx context.Context, userID string) ([]*entities.MealPlan, error)
		GetMealPlansInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error)
		CountByStatus(ctx context.Context, userID string, status string) (int64, error)
		CountAll(ctx context.Context, userID string) (int64, error)
		GetRecentPlans(ctx context.Context, userID string, limit int) ([]*entities.MealPlan, error)
		GetCookingHistory(ctx context.Context, userID, recipeID string) (*entities.CookingHistory, error)
		SaveCookingHistory(ctx context.Context, history *entities.CookingHistory) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Omit("Recipe", "User").Save(plan).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}

func (r *mealPlanRepository) GetMealPlansByUser(ctx context.Context, userID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) GetMealPlansInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) CountByStatus(ctx context.Context, userID string, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MealPlan{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *mealPlanRepository) CountAll(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MealPlan{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *mealPlanRepository) GetRecentPlans(ctx context.Context, userID string, limit int) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) GetCookingHistory(ctx context.Context, userID, recipeID string) (*entities.CookingHistory, error) {
	var history entities.CookingHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *mealPlanRepository) SaveCookingHistory(ctx context.Context, history *entities.CookingHistory) error {
	return r.db.WithContext(ctx).Save(history).Error
}
