package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_review" json:"user_id"`
	RecipeID        uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_review" json:"recipe_id"`
	Rating          int       `json:"rating"` // 1-5
	Comment         string    `gorm:"type:text" json:"comment"`
	Approved        bool      `json:"approved"`
	HelpfulCount    int       `json:"helpful_count"`
	NotHelpfulCount int       `json:"not_helpful_count"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type ReviewVote struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReviewID uuid.UUID `gorm:"uniqueIndex:idx_review_voter" json:"review_id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_review_voter" json:"user_id"`
	Helpful  bool      `json:"helpful"`

	Review *Review `gorm:"foreignKey:ReviewID"`
	User   *User   `gorm:"foreignKey:UserID"`
}
