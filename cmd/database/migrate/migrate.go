package migration

import (
	"fmt"
	"log"

	"recipe-hub/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeInstruction{},
		&entities.Review{},
		&entities.ReviewVote{},
		&entities.CookingHistory{},
		&entities.Favorite{},
		&entities.MealPlan{},
		&entities.GroceryList{},
		&entities.GroceryItem{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
