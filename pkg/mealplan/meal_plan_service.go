package mealplan

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"recipe-hub/domain"
	"recipe-hub/entities"
	"recipe-hub/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		GetMealPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error)
		GetWeeklyMealPlans(ctx context.Context, userID, week string) ([]domain.MealPlanResponse, error)
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) error
		DeleteMealPlan(ctx context.Context, id string, userID string) error
		MarkAsCooked(ctx context.Context, id string, userID string) error
		GetStats(ctx context.Context, userID string) (domain.MealPlanStatsResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, recipeRepository recipe.RecipeRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		recipeRepository:   recipeRepository,
	}
}

// WeekWindow converts a "YYYY-WW" week label to its date window. Weeks are
// counted from January 1st: week 1 covers days 1 through 7 of the year,
// week 2 days 8 through 14, and so on.
func WeekWindow(week string) (time.Time, time.Time, error) {
	parts := strings.Split(week, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, domain.ErrInvalidWeek
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return time.Time{}, time.Time{}, domain.ErrInvalidWeek
	}

	weekNum, err := strconv.Atoi(parts[1])
	if err != nil || weekNum < 1 || weekNum > 53 {
		return time.Time{}, time.Time{}, domain.ErrInvalidWeek
	}

	start := time.Date(year, time.January, (weekNum-1)*7+1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.January, weekNum*7, 23, 59, 59, 0, time.UTC)
	return start, end, nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, userID string) ([]domain.MealPlanResponse, error) {
	plans, err := s.mealPlanRepository.GetMealPlansByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toMealPlanResponses(plans), nil
}

func (s *mealPlanService) GetWeeklyMealPlans(ctx context.Context, userID, week string) ([]domain.MealPlanResponse, error) {
	start, end, err := WeekWindow(week)
	if err != nil {
		return nil, err
	}

	plans, err := s.mealPlanRepository.GetMealPlansInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return toMealPlanResponses(plans), nil
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidDate
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrRecipeNotFound
		}
		return domain.MealPlanResponse{}, err
	}
	if !target.Approved {
		return domain.MealPlanResponse{}, domain.ErrRecipeNotApproved
	}

	plan := &entities.MealPlan{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Date:     date,
		MealType: req.MealType,
		Status:   "Planned",
		Notes:    req.Notes,
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	plan.Recipe = target
	return toMealPlanResponse(plan), nil
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest, userID string) error {
	plan, err := s.getOwnedPlan(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.ErrInvalidDate
		}
		plan.Date = date
	}
	if req.MealType != "" {
		plan.MealType = req.MealType
	}
	if req.Status != "" {
		plan.Status = req.Status
	}
	if req.Notes != "" {
		plan.Notes = req.Notes
	}

	return s.mealPlanRepository.UpdateMealPlan(ctx, plan)
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedPlan(ctx, id, userID); err != nil {
		return err
	}
	return s.mealPlanRepository.DeleteMealPlan(ctx, id)
}

// MarkAsCooked sets the plan status, bumps the recipe cook count and upserts
// the cooking history row. Cooking the same recipe again refreshes CookedAt
// instead of adding a second row.
func (s *mealPlanService) MarkAsCooked(ctx context.Context, id string, userID string) error {
	plan, err := s.getOwnedPlan(ctx, id, userID)
	if err != nil {
		return err
	}

	plan.Status = "Cooked"
	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		return err
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, plan.RecipeID.String())
	if err != nil {
		return err
	}

	history, err := s.mealPlanRepository.GetCookingHistory(ctx, userID, plan.RecipeID.String())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		history = &entities.CookingHistory{
			ID:       uuid.New(),
			UserID:   plan.UserID,
			RecipeID: plan.RecipeID,
			Cuisine:  target.Cuisine,
			Category: target.Category,
			CookedAt: time.Now(),
		}
	case err != nil:
		return err
	default:
		history.Cuisine = target.Cuisine
		history.Category = target.Category
		history.CookedAt = time.Now()
	}

	if err := s.mealPlanRepository.SaveCookingHistory(ctx, history); err != nil {
		return err
	}

	return s.recipeRepository.IncrementCookCount(ctx, plan.RecipeID.String())
}

func (s *mealPlanService) GetStats(ctx context.Context, userID string) (domain.MealPlanStatsResponse, error) {
	total, err := s.mealPlanRepository.CountAll(ctx, userID)
	if err != nil {
		return domain.MealPlanStatsResponse{}, err
	}
	cooked, err := s.mealPlanRepository.CountByStatus(ctx, userID, "Cooked")
	if err != nil {
		return domain.MealPlanStatsResponse{}, err
	}
	planned, err := s.mealPlanRepository.CountByStatus(ctx, userID, "Planned")
	if err != nil {
		return domain.MealPlanStatsResponse{}, err
	}

	var completionRate float64
	if total > 0 {
		completionRate = float64(cooked) / float64(total) * 100
	}

	recent, err := s.mealPlanRepository.GetRecentPlans(ctx, userID, 5)
	if err != nil {
		return domain.MealPlanStatsResponse{}, err
	}

	return domain.MealPlanStatsResponse{
		TotalPlans:     total,
		CookedPlans:    cooked,
		PlannedPlans:   planned,
		CompletionRate: completionRate,
		RecentPlans:    toMealPlanResponses(recent),
	}, nil
}

func (s *mealPlanService) getOwnedPlan(ctx context.Context, id, userID string) (*entities.MealPlan, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}

	if plan.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return plan, nil
}

func toMealPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	res := domain.MealPlanResponse{
		ID:       plan.ID.String(),
		Date:     plan.Date,
		MealType: plan.MealType,
		Status:   plan.Status,
		Notes:    plan.Notes,
	}
	if plan.Recipe != nil {
		recipeRes := recipe.ToRecipeResponse(plan.Recipe)
		res.Recipe = &recipeRes
	}
	return res
}

func toMealPlanResponses(plans []*entities.MealPlan) []domain.MealPlanResponse {
	res := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		res = append(res, toMealPlanResponse(plan))
	}
	return res
}
