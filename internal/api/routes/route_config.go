package routes

import (
	"recipe-hub/internal/api/handlers"
	"recipe-hub/internal/middleware"
	"recipe-hub/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	RecipeHandler         handlers.RecipeHandler
	ReviewHandler         handlers.ReviewHandler
	MealPlanHandler       handlers.MealPlanHandler
	GroceryHandler        handlers.GroceryHandler
	RecommendationHandler handlers.RecommendationHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Reviews()
	c.MealPlans()
	c.GroceryLists()
	c.Recommendations()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/favorites", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.AddFavorite)
		user.Delete("/favorites", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.RemoveFavorite)
		user.Get("/history", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetCookingHistory)
	}

	admin := c.App.Group("/api/v1/admin/users", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		admin.Get("", c.UserHandler.GetUsers)
		admin.Patch("/:id/role", c.UserHandler.UpdateUserRole)
		admin.Delete("/:id", c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/featured", c.RecipeHandler.GetFeaturedRecipes)
	recipes.Get("/top", c.RecipeHandler.GetTopRatedRecipes)
	recipes.Get("/search", c.RecipeHandler.SearchByIngredients)
	recipes.Get("/category/:category", c.RecipeHandler.GetRecipesByCategory)
	recipes.Get("/cuisine/:cuisine", c.RecipeHandler.GetRecipesByCuisine)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)

	recipes.Patch("/:id/approve",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
		c.RecipeHandler.ApproveRecipe,
	)
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")

	reviews.Get("/recipe/:recipeId", c.ReviewHandler.GetReviewsByRecipe)

	reviews.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.CreateReview)
	reviews.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.UpdateReview)
	reviews.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.DeleteReview)
	reviews.Post("/:id/helpful", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.MarkHelpful)
	reviews.Post("/:id/not-helpful", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.MarkNotHelpful)

	reviews.Patch("/:id/approve",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
		c.ReviewHandler.ApproveReview,
	)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))

	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Get("/stats", c.MealPlanHandler.GetStats)
	mealPlans.Get("/week/:week", c.MealPlanHandler.GetWeeklyMealPlans)
	mealPlans.Post("", c.MealPlanHandler.CreateMealPlan)
	mealPlans.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
	mealPlans.Post("/:id/cooked", c.MealPlanHandler.MarkAsCooked)
}

func (c *Config) GroceryLists() {
	groceries := c.App.Group("/api/v1/grocery-lists", c.Middleware.AuthMiddleware(c.JWTService))

	groceries.Get("", c.GroceryHandler.GetGroceryLists)
	groceries.Post("/generate", c.GroceryHandler.GenerateGroceryList)
	groceries.Get("/:week", c.GroceryHandler.GetGroceryList)
	groceries.Post("/:week/items", c.GroceryHandler.AddItem)
	groceries.Put("/items/:itemId", c.GroceryHandler.UpdateItem)
	groceries.Delete("/items/:itemId", c.GroceryHandler.RemoveItem)
}

func (c *Config) Recommendations() {
	recommendations := c.App.Group("/api/v1/recommendations")

	recommendations.Get("/trending", c.RecommendationHandler.GetTrendingRecipes)
	recommendations.Get("/seasonal/:season", c.RecommendationHandler.GetSeasonalRecipes)
	recommendations.Get("/random", c.RecommendationHandler.GetRandomRecipes)
	recommendations.Get("/similar/:id", c.RecommendationHandler.GetSimilarRecipes)

	recommendations.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.RecommendationHandler.GetRecommendations)
	recommendations.Get("/category/:category", c.Middleware.AuthMiddleware(c.JWTService), c.RecommendationHandler.GetRecipesByCategory)
	recommendations.Get("/cuisine/:cuisine", c.Middleware.AuthMiddleware(c.JWTService), c.RecommendationHandler.GetRecipesByCuisine)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
