package handlers

import (
	"recipe-hub/domain"
	"recipe-hub/internal/api/presenters"
	"recipe-hub/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GetMealPlans(c *fiber.Ctx) error
		GetWeeklyMealPlans(c *fiber.Ctx) error
		CreateMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		MarkAsCooked(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetMealPlans(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetWeeklyMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	week := c.Params("week")

	res, err := h.mealPlanService.GetWeeklyMealPlans(c.Context(), userID, week)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	res, err := h.mealPlanService.CreateMealPlan(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.UpdateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	if err := h.mealPlanService.UpdateMealPlan(c.Context(), planID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) MarkAsCooked(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.MarkAsCooked(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAsCooked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsCooked)
}

func (h *mealPlanHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.mealPlanService.GetStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealStats)
}
