package grocery

import (
	"fmt"
	"strconv"
	"strings"

	"recipe-hub/entities"
)

// AggregateIngredients merges the ingredient lines of every recipe in the
// given meal plans into a single shopping list. Lines sharing the same
// lowercased name and unit are combined by numeric quantity addition, with
// quantities that do not parse as numbers counting as 0. Meal plans without
// a loaded recipe or without ingredients are skipped. Output preserves the
// order in which merge keys were first seen.
func AggregateIngredients(mealPlans []*entities.MealPlan) []*entities.GroceryItem {
	items := make([]*entities.GroceryItem, 0)
	index := make(map[string]int)
	conflictSeq := 0

	for _, plan := range mealPlans {
		if plan.Recipe == nil || len(plan.Recipe.Ingredients) == 0 {
			continue
		}

		for _, ingredient := range plan.Recipe.Ingredients {
			key := strings.ToLower(ingredient.Name) + "-" + strings.ToLower(ingredient.Unit)

			if i, ok := index[key]; ok {
				existing := items[i]
				if existing.Unit == ingredient.Unit {
					sum := parseQuantity(existing.Quantity) + parseQuantity(ingredient.Quantity)
					existing.Quantity = formatQuantity(sum)
					continue
				}
				// Units that differ only in casing collide on the merge key.
				// Keep the line separate under a counter-suffixed key so a
				// repeated conflict never overwrites an earlier one.
				conflictSeq++
				key = fmt.Sprintf("%s-%d", key, conflictSeq)
			}

			recipeID := plan.Recipe.ID
			index[key] = len(items)
			items = append(items, &entities.GroceryItem{
				Name:      ingredient.Name,
				Quantity:  ingredient.Quantity,
				Unit:      ingredient.Unit,
				Category:  CategorizeIngredient(ingredient.Name),
				Purchased: false,
				RecipeID:  &recipeID,
				Position:  len(items),
			})
		}
	}

	return items
}

func parseQuantity(quantity string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
	if err != nil {
		return 0
	}
	return value
}

func formatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
