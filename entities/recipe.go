package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Category      string    `json:"category"` // "Appetizer", "Main Course", "Dessert", "Snack", "Beverage", "Salad", "Soup", "Breakfast"
	Cuisine       string    `json:"cuisine"`
	CookingTime   int       `json:"cooking_time"` // minutes
	Servings      int       `json:"servings"`
	Calories      int       `json:"calories"`
	Difficulty    string    `json:"difficulty"` // "Easy", "Medium", "Hard"
	ImageURL      string    `json:"image_url,omitempty"`
	Featured      bool      `json:"featured"`
	Approved      bool      `json:"approved"`
	AverageRating float64   `json:"average_rating"`
	NumReviews    int       `json:"num_reviews"`
	CookCount     int       `json:"cook_count"`

	User         *User                `gorm:"foreignKey:UserID"`
	Ingredients  []*RecipeIngredient  `gorm:"foreignKey:RecipeID"`
	Instructions []*RecipeInstruction `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// RecipeIngredient stores quantity as text so descriptors like "to taste"
// survive; the grocery aggregator parses it best-effort.
type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity"`
	Unit     string    `json:"unit"`
	Position int       `json:"position"`
}

type RecipeInstruction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	Step        int       `json:"step"`
	Description string    `gorm:"type:text" json:"description"`
}
