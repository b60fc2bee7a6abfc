package handlers

import (
	"strconv"

	"recipe-hub/domain"
	"recipe-hub/internal/api/presenters"
	"recipe-hub/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		GetReviewsByRecipe(c *fiber.Ctx) error
		CreateReview(c *fiber.Ctx) error
		UpdateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
		ApproveReview(c *fiber.Ctx) error
		MarkHelpful(c *fiber.Ctx) error
		MarkNotHelpful(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) GetReviewsByRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, domain.ErrRecipeNotFound)
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	reviews, count, err := h.reviewService.GetReviewsByRecipe(c.Context(), recipeID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	res, err := h.reviewService.CreateReview(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) UpdateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reviewID := c.Params("id")
	req := new(domain.UpdateReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReview, err)
	}

	if err := h.reviewService.UpdateReview(c.Context(), reviewID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReview)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	reviewID := c.Params("id")

	if err := h.reviewService.DeleteReview(c.Context(), reviewID, userID, role); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}

func (h *reviewHandler) ApproveReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	if err := h.reviewService.ApproveReview(c.Context(), reviewID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveReview)
}

func (h *reviewHandler) MarkHelpful(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reviewID := c.Params("id")

	if err := h.reviewService.VoteReview(c.Context(), reviewID, userID, true); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVoteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVoteReview)
}

func (h *reviewHandler) MarkNotHelpful(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reviewID := c.Params("id")

	if err := h.reviewService.VoteReview(c.Context(), reviewID, userID, false); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVoteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVoteReview)
}
