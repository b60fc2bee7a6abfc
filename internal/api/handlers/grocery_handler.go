package handlers

import (
	"recipe-hub/domain"
	"recipe-hub/internal/api/presenters"
	"recipe-hub/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		GenerateGroceryList(c *fiber.Ctx) error
		GetGroceryList(c *fiber.Ctx) error
		GetGroceryLists(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GenerateGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateGroceryListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateGroceries, err)
	}

	res, err := h.groceryService.GenerateGroceryList(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateGroceries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateGroceries)
}

func (h *groceryHandler) GetGroceryList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	week := c.Params("week")

	res, err := h.groceryService.GetGroceryList(c.Context(), userID, week)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryList)
}

func (h *groceryHandler) GetGroceryLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groceryService.GetGroceryLists(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGroceryLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGroceryLists)
}

func (h *groceryHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	week := c.Params("week")
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddItem(c.Context(), week, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("itemId")
	req := new(domain.UpdateGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryItem, err)
	}

	if err := h.groceryService.UpdateItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateGroceryItem)
}

func (h *groceryHandler) RemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("itemId")

	if err := h.groceryService.RemoveItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveGroceryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveGroceryItem)
}
