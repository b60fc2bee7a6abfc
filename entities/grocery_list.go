package entities

import (
	"github.com/google/uuid"
)

// GroceryList is unique per (user, week); week uses the "YYYY-WW" format.
type GroceryList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_user_week" json:"user_id"`
	Week   string    `gorm:"uniqueIndex:idx_user_week" json:"week"`

	User  *User          `gorm:"foreignKey:UserID"`
	Items []*GroceryItem `gorm:"foreignKey:GroceryListID"`
	Timestamp
}

type GroceryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroceryListID uuid.UUID  `json:"grocery_list_id"`
	Name          string     `json:"name"`
	Quantity      string     `json:"quantity"`
	Unit          string     `json:"unit"`
	Category      string     `json:"category"` // "Produce", "Dairy", "Meat", "Pantry", "Beverages", "Other"
	Purchased     bool       `json:"purchased"`
	RecipeID      *uuid.UUID `json:"recipe_id,omitempty"`
	Position      int        `json:"position"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
