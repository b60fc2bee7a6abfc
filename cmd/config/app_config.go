package config

import (
	"os"
	"time"

	"recipe-hub/internal/api/handlers"
	"recipe-hub/internal/api/routes"
	"recipe-hub/internal/middleware"
	"recipe-hub/internal/utils"
	"recipe-hub/internal/utils/storage"
	"recipe-hub/pkg/grocery"
	"recipe-hub/pkg/jwt"
	"recipe-hub/pkg/mealplan"
	"recipe-hub/pkg/recipe"
	"recipe-hub/pkg/recommendation"
	"recipe-hub/pkg/review"
	"recipe-hub/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, recipeRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, recipeRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, mealPlanRepository)
	recommendationService := recommendation.NewRecommendationService(
		recipeRepository,
		reviewRepository,
		userRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		RecipeHandler:         recipeHandler,
		ReviewHandler:         reviewHandler,
		MealPlanHandler:       mealPlanHandler,
		GroceryHandler:        groceryHandler,
		RecommendationHandler: recommendationHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
