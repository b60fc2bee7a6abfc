package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetGroceryList    = "success get grocery list"
	MessageSuccessGetGroceryLists   = "success get grocery lists"
	MessageSuccessGenerateGroceries = "grocery list generated successfully"
	MessageSuccessAddGroceryItem    = "grocery item added successfully"
	MessageSuccessUpdateGroceryItem = "grocery item updated successfully"
	MessageSuccessRemoveGroceryItem = "grocery item removed successfully"

	MessageFailedGetGroceryList    = "failed to get grocery list"
	MessageFailedGetGroceryLists   = "failed to get grocery lists"
	MessageFailedGenerateGroceries = "failed to generate grocery list"
	MessageFailedAddGroceryItem    = "failed to add grocery item"
	MessageFailedUpdateGroceryItem = "failed to update grocery item"
	MessageFailedRemoveGroceryItem = "failed to remove grocery item"

	ErrGroceryListNotFound = errors.New("grocery list not found")
	ErrGroceryItemNotFound = errors.New("grocery item not found")
)

type (
	GenerateGroceryListRequest struct {
		Week      string `json:"week" validate:"required"`
		StartDate string `json:"start_date" validate:"omitempty"`
		EndDate   string `json:"end_date" validate:"omitempty"`
	}

	AddGroceryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
		Unit     string `json:"unit" validate:"omitempty"`
		Category string `json:"category" validate:"omitempty,oneof=Produce Dairy Meat Pantry Beverages Other"`
	}

	UpdateGroceryItemRequest struct {
		Name      string `json:"name" validate:"omitempty"`
		Quantity  string `json:"quantity" validate:"omitempty"`
		Unit      string `json:"unit" validate:"omitempty"`
		Category  string `json:"category" validate:"omitempty,oneof=Produce Dairy Meat Pantry Beverages Other"`
		Purchased *bool  `json:"purchased" validate:"omitempty"`
	}

	GroceryItemResponse struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Quantity  string `json:"quantity"`
		Unit      string `json:"unit"`
		Category  string `json:"category"`
		Purchased bool   `json:"purchased"`
		RecipeID  string `json:"recipe_id,omitempty"`
	}

	GroceryListResponse struct {
		ID        string                `json:"id"`
		Week      string                `json:"week"`
		Items     []GroceryItemResponse `json:"items"`
		CreatedAt time.Time             `json:"created_at"`
	}
)
