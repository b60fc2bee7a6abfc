package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex" json:"email"`
	Password        string    `json:"-"`
	Role            string    `json:"role"` // "user", "admin"
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	Verified        bool      `json:"verified"`

	CookingHistory []*CookingHistory `gorm:"foreignKey:UserID"`
	Favorites      []*Favorite       `gorm:"foreignKey:UserID"`
	Timestamp
}

// CookingHistory keeps at most one row per (user, recipe); cooking the same
// recipe again only refreshes CookedAt. Cuisine and category are snapshotted
// from the recipe so preference counting does not need a join.
type CookingHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_history" json:"user_id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_history" json:"recipe_id"`
	Cuisine  string    `json:"cuisine"`
	Category string    `json:"category"`
	CookedAt time.Time `gorm:"type:timestamp" json:"cooked_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_favorite" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_favorite" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
