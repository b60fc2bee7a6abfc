package handlers

import (
	"strconv"

	"recipe-hub/domain"
	"recipe-hub/internal/api/presenters"
	"recipe-hub/pkg/recommendation"

	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GetRecommendations(c *fiber.Ctx) error
		GetSimilarRecipes(c *fiber.Ctx) error
		GetTrendingRecipes(c *fiber.Ctx) error
		GetSeasonalRecipes(c *fiber.Ctx) error
		GetRandomRecipes(c *fiber.Ctx) error
		GetRecipesByCategory(c *fiber.Ctx) error
		GetRecipesByCuisine(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
	}
}

func parseLimit(c *fiber.Ctx) int {
	limit, err := strconv.Atoi(c.Query("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func (h *recommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recommendationService.GetRecommendations(c.Context(), userID, parseLimit(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetSimilarRecipes(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, domain.ErrRecipeNotFound)
	}

	res, err := h.recommendationService.GetSimilarRecipes(c.Context(), recipeID, parseLimit(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetTrendingRecipes(c *fiber.Ctx) error {
	res, err := h.recommendationService.GetTrendingRecipes(c.Context(), parseLimit(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetSeasonalRecipes(c *fiber.Ctx) error {
	season := c.Params("season")

	res, err := h.recommendationService.GetSeasonalRecipes(c.Context(), season, parseLimit(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetRandomRecipes(c *fiber.Ctx) error {
	res, err := h.recommendationService.GetRandomRecipes(c.Context(), parseLimit(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetRecipesByCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	category := c.Params("category")

	res, err := h.recommendationService.GetRecipesByCategory(c.Context(), userID, category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recommendationHandler) GetRecipesByCuisine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	cuisine := c.Params("cuisine")

	res, err := h.recommendationService.GetRecipesByCuisine(c.Context(), userID, cuisine)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
