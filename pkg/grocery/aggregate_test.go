package grocery

import (
	"testing"

	"recipe-hub/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planWithIngredients(ingredients ...*entities.RecipeIngredient) *entities.MealPlan {
	return &entities.MealPlan{
		ID: uuid.New(),
		Recipe: &entities.Recipe{
			ID:          uuid.New(),
			Ingredients: ingredients,
		},
	}
}

func ingredient(name, quantity, unit string) *entities.RecipeIngredient {
	return &entities.RecipeIngredient{Name: name, Quantity: quantity, Unit: unit}
}

func TestAggregateIngredientsEmptyInput(t *testing.T) {
	items := AggregateIngredients(nil)
	assert.Empty(t, items)

	items = AggregateIngredients([]*entities.MealPlan{})
	assert.Empty(t, items)
}

func TestAggregateIngredientsSkipsPlansWithoutRecipe(t *testing.T) {
	plans := []*entities.MealPlan{
		{ID: uuid.New()},
		planWithIngredients(),
		planWithIngredients(ingredient("Salt", "1", "tsp")),
	}

	items := AggregateIngredients(plans)
	require.Len(t, items, 1)
	assert.Equal(t, "Salt", items[0].Name)
}

func TestAggregateIngredientsMergesMatchingNameAndUnit(t *testing.T) {
	plans := []*entities.MealPlan{
		planWithIngredients(ingredient("Salt", "1", "tsp")),
		planWithIngredients(ingredient("salt", "2", "tsp")),
	}

	items := AggregateIngredients(plans)
	require.Len(t, items, 1)
	assert.Equal(t, "Salt", items[0].Name)
	assert.Equal(t, "3", items[0].Quantity)
	assert.Equal(t, "tsp", items[0].Unit)
}

func TestAggregateIngredientsNoCollisionsKeepsEveryLine(t *testing.T) {
	plans := []*entities.MealPlan{
		planWithIngredients(
			ingredient("Salt", "1", "tsp"),
			ingredient("Flour", "200", "g"),
			ingredient("Milk", "1", "cup"),
		),
		planWithIngredients(ingredient("Eggs", "2", "pcs")),
	}

	items := AggregateIngredients(plans)
	assert.Len(t, items, 4)
}

func TestAggregateIngredientsDifferentUnitsStaySeparate(t *testing.T) {
	plans := []*entities.MealPlan{
		planWithIngredients(ingredient("Sugar", "1", "cup")),
		planWithIngredients(ingredient("Sugar", "50", "g")),
	}

	items := AggregateIngredients(plans)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, "50", items[1].Quantity)
}

func TestAggregateIngredientsUnitCaseConflictNeverOverwrites(t *testing.T) {
	// "Tsp" and "tsp" collide on the lowercased merge key but are not the
	// same unit, so each occurrence must survive as its own line.
	plans := []*entities.MealPlan{
		planWithIngredients(ingredient("Salt", "1", "tsp")),
		planWithIngredients(ingredient("Salt", "2", "Tsp")),
		planWithIngredients(ingredient("Salt", "3", "TSP")),
	}

	items := AggregateIngredients(plans)
	assert.Len(t, items, 3)
}

func TestAggregateIngredientsUnparsableQuantityCountsAsZero(t *testing.T) {
	plans := []*entities.MealPlan{
		planWithIngredients(ingredient("Pepper", "to taste", "pinch")),
		planWithIngredients(ingredient("Pepper", "2", "pinch")),
	}

	items := AggregateIngredients(plans)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Quantity)
}

func TestAggregateIngredientsFractionalSum(t *testing.T) {
	plans := []*entities.MealPlan{
		planWithIngredients(ingredient("Butter", "0.5", "cup")),
		planWithIngredients(ingredient("Butter", "0.25", "cup")),
	}

	items := AggregateIngredients(plans)
	require.Len(t, items, 1)
	assert.Equal(t, "0.75", items[0].Quantity)
}

func TestAggregateIngredientsPreservesFirstSeenOrder(t *testing.T) {
	plans := []*entities.MealPlan{
		planWithIngredients(
			ingredient("Tomato", "2", "pcs"),
			ingredient("Salt", "1", "tsp"),
		),
		planWithIngredients(
			ingredient("Milk", "1", "cup"),
			ingredient("Tomato", "3", "pcs"),
		),
	}

	items := AggregateIngredients(plans)
	require.Len(t, items, 3)
	assert.Equal(t, "Tomato", items[0].Name)
	assert.Equal(t, "5", items[0].Quantity)
	assert.Equal(t, "Salt", items[1].Name)
	assert.Equal(t, "Milk", items[2].Name)
	for i, item := range items {
		assert.Equal(t, i, item.Position)
	}
}

func TestAggregateIngredientsStampsCategoryAndSource(t *testing.T) {
	plan := planWithIngredients(ingredient("Chicken breast", "500", "g"))

	items := AggregateIngredients([]*entities.MealPlan{plan})
	require.Len(t, items, 1)
	assert.Equal(t, CategoryMeat, items[0].Category)
	assert.False(t, items[0].Purchased)
	require.NotNil(t, items[0].RecipeID)
	assert.Equal(t, plan.Recipe.ID, *items[0].RecipeID)
}
