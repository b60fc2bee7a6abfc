package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMealPlans    = "success get meal plans"
	MessageSuccessCreateMealPlan  = "meal plan created successfully"
	MessageSuccessUpdateMealPlan  = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan  = "meal plan removed"
	MessageSuccessMarkAsCooked    = "meal marked as cooked"
	MessageSuccessGetMealStats    = "success get meal plan statistics"

	MessageFailedGetMealPlans   = "failed to get meal plans"
	MessageFailedCreateMealPlan = "failed to create meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to remove meal plan"
	MessageFailedMarkAsCooked   = "failed to mark meal as cooked"
	MessageFailedGetMealStats   = "failed to get meal plan statistics"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidWeek      = errors.New("invalid week format, expected YYYY-WW")
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
)

type (
	CreateMealPlanRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Date     string `json:"date" validate:"required"`
		MealType string `json:"meal_type" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
		Notes    string `json:"notes" validate:"omitempty,max=500"`
	}

	UpdateMealPlanRequest struct {
		Date     string `json:"date" validate:"omitempty"`
		MealType string `json:"meal_type" validate:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
		Status   string `json:"status" validate:"omitempty,oneof=Planned Cooking Cooked Skipped"`
		Notes    string `json:"notes" validate:"omitempty,max=500"`
	}

	MealPlanResponse struct {
		ID       string          `json:"id"`
		Date     time.Time       `json:"date"`
		MealType string          `json:"meal_type"`
		Status   string          `json:"status"`
		Notes    string          `json:"notes,omitempty"`
		Recipe   *RecipeResponse `json:"recipe,omitempty"`
	}

	MealPlanStatsResponse struct {
		TotalPlans     int64              `json:"total_plans"`
		CookedPlans    int64              `json:"cooked_plans"`
		PlannedPlans   int64              `json:"planned_plans"`
		CompletionRate float64            `json:"completion_rate"`
		RecentPlans    []MealPlanResponse `json:"recent_plans"`
	}
)
