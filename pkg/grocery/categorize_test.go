package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeIngredient(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Tomato", CategoryProduce},
		{"red onion", CategoryProduce},
		{"Baby Spinach", CategoryProduce},
		{"Whole Milk", CategoryDairy},
		{"cheddar cheese", CategoryDairy},
		{"Heavy Cream", CategoryDairy},
		{"Chicken breast", CategoryMeat},
		{"ground beef", CategoryMeat},
		{"Lamb shank", CategoryMeat},
		{"Sparkling Water", CategoryBeverages},
		{"grape juice", CategoryBeverages},
		{"Red Wine", CategoryBeverages},
		{"Unknown Item", CategoryPantry},
		{"flour", CategoryPantry},
		{"", CategoryPantry},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CategorizeIngredient(tt.name), "ingredient %q", tt.name)
	}
}

func TestCategorizeIngredientPriorityOrder(t *testing.T) {
	// "pepper" (produce) appears before any meat keyword could match, so a
	// compound name hits the earlier group.
	assert.Equal(t, CategoryProduce, CategorizeIngredient("pepper chicken"))

	// Dairy is checked before beverages.
	assert.Equal(t, CategoryDairy, CategorizeIngredient("milk tea"))
}

func TestCategorizeIngredientCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategorizeIngredient("GARLIC"), CategorizeIngredient("garlic"))
	assert.Equal(t, CategoryProduce, CategorizeIngredient("GaRLiC cloves"))
}
