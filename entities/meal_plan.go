package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Date     time.Time `gorm:"type:timestamp" json:"date"`
	MealType string    `json:"meal_type"` // "Breakfast", "Lunch", "Dinner", "Snack"
	Status   string    `json:"status"`    // "Planned", "Cooking", "Cooked", "Skipped"
	Notes    string    `json:"notes,omitempty"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
