package grocery

import "strings"

const (
	CategoryProduce   = "Produce"
	CategoryDairy     = "Dairy"
	CategoryMeat      = "Meat"
	CategoryBeverages = "Beverages"
	CategoryPantry    = "Pantry"
	CategoryOther     = "Other"
)

type keywordGroup struct {
	category string
	keywords []string
}

// Checked in order; the first group containing a matching keyword wins.
var keywordGroups = []keywordGroup{
	{CategoryProduce, []string{
		"apple", "banana", "orange", "tomato", "lettuce", "onion",
		"garlic", "carrot", "potato", "broccoli", "spinach", "pepper",
	}},
	{CategoryDairy, []string{"milk", "cheese", "butter", "yogurt", "cream"}},
	{CategoryMeat, []string{"chicken", "beef", "pork", "fish", "shrimp", "lamb"}},
	{CategoryBeverages, []string{"water", "juice", "coffee", "tea", "wine", "beer"}},
}

// CategorizeIngredient maps a free-text ingredient name to a grocery
// category using case-insensitive substring matching. Every input maps to
// exactly one category; anything unmatched lands in Pantry.
func CategorizeIngredient(ingredientName string) string {
	name := strings.ToLower(ingredientName)

	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(name, keyword) {
				return group.category
			}
		}
	}

	return CategoryPantry
}
