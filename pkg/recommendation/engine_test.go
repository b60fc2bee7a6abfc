package recommendation

import (
	"testing"

	"recipe-hub/domain"
	"recipe-hub/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyEntry(cuisine, category string) *entities.CookingHistory {
	return &entities.CookingHistory{
		ID:       uuid.New(),
		RecipeID: uuid.New(),
		Cuisine:  cuisine,
		Category: category,
	}
}

func approvedRecipe(name string) *entities.Recipe {
	return &entities.Recipe{ID: uuid.New(), Name: name, Approved: true}
}

func TestBuildPreferenceProfile(t *testing.T) {
	history := []*entities.CookingHistory{
		historyEntry("Italian", "Main Course"),
		historyEntry("Italian", "Dessert"),
		historyEntry("Thai", "Main Course"),
		historyEntry("", "Soup"),
		historyEntry("Mexican", ""),
	}

	profile := BuildPreferenceProfile(history)

	assert.Equal(t, 2, profile.Cuisines["Italian"])
	assert.Equal(t, 1, profile.Cuisines["Thai"])
	assert.Equal(t, 1, profile.Cuisines["Mexican"])
	assert.NotContains(t, profile.Cuisines, "")
	assert.Equal(t, 2, profile.Categories["Main Course"])
	assert.Equal(t, 1, profile.Categories["Soup"])
	assert.NotContains(t, profile.Categories, "")
}

func TestBuildPreferenceProfileEmptyHistory(t *testing.T) {
	profile := BuildPreferenceProfile(nil)
	assert.Empty(t, profile.Cuisines)
	assert.Empty(t, profile.Categories)
}

func TestScoreRecipeWeights(t *testing.T) {
	recipe := approvedRecipe("Carbonara")
	recipe.Cuisine = "Italian"
	recipe.Category = "Main Course"
	recipe.AverageRating = 5
	recipe.CookCount = 0

	profile := PreferenceProfile{
		Cuisines:   map[string]int{"Italian": 4},
		Categories: map[string]int{"Main Course": 2},
	}
	ratings := map[uuid.UUID]int{recipe.ID: 5}

	// cuisine: 4/4*0.4, category: 2/4*0.3, own rating: 5/5*0.2,
	// popularity: 5/5*0.05 + 0 = 0.05
	score := ScoreRecipe(recipe, profile, 4, ratings)
	assert.InDelta(t, 0.4+0.15+0.2+0.05, score, 1e-9)
}

func TestScoreRecipePopularityCapped(t *testing.T) {
	recipe := approvedRecipe("Viral Dish")
	recipe.AverageRating = 5
	recipe.CookCount = 1_000_000

	score := ScoreRecipe(recipe, BuildPreferenceProfile(nil), 0, nil)
	assert.InDelta(t, 0.1, score, 1e-9)
}

func TestScoreRecipeMissingInputsScoreZeroContribution(t *testing.T) {
	recipe := approvedRecipe("Plain")
	score := ScoreRecipe(recipe, BuildPreferenceProfile(nil), 0, nil)
	assert.Zero(t, score)
}

func TestScoreRecipeMonotonicInCuisineCount(t *testing.T) {
	recipe := approvedRecipe("Pad Thai")
	recipe.Cuisine = "Thai"
	recipe.Category = "Main Course"

	historyLen := 10
	previous := -1.0
	for count := 0; count <= historyLen; count++ {
		profile := PreferenceProfile{
			Cuisines:   map[string]int{"Thai": count},
			Categories: map[string]int{},
		}
		score := ScoreRecipe(recipe, profile, historyLen, nil)
		assert.GreaterOrEqual(t, score, previous)
		previous = score
	}
}

func TestRecommendColdStartSortsByPopularity(t *testing.T) {
	a := approvedRecipe("A")
	a.CookCount = 5
	a.AverageRating = 3
	b := approvedRecipe("B")
	b.CookCount = 10
	b.AverageRating = 2
	c := approvedRecipe("C")
	c.CookCount = 10
	c.AverageRating = 4.5
	hidden := &entities.Recipe{ID: uuid.New(), Name: "hidden", CookCount: 100}

	got, err := Recommend(nil, nil, []*entities.Recipe{a, b, c, hidden}, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestRecommendPersonalizedOrdering(t *testing.T) {
	history := []*entities.CookingHistory{
		historyEntry("Italian", "Main Course"),
		historyEntry("Italian", "Main Course"),
		historyEntry("Thai", "Soup"),
	}

	match := approvedRecipe("Italian Main")
	match.Cuisine = "Italian"
	match.Category = "Main Course"
	partial := approvedRecipe("Thai Soup")
	partial.Cuisine = "Thai"
	partial.Category = "Soup"
	miss := approvedRecipe("French Dessert")
	miss.Cuisine = "French"
	miss.Category = "Dessert"

	got, err := Recommend(history, nil, []*entities.Recipe{miss, partial, match}, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Italian Main", got[0].Name)
	assert.Equal(t, "Thai Soup", got[1].Name)
	assert.Equal(t, "French Dessert", got[2].Name)
}

func TestRecommendStableTieBreak(t *testing.T) {
	history := []*entities.CookingHistory{historyEntry("Italian", "Main Course")}

	first := approvedRecipe("First")
	second := approvedRecipe("Second")
	third := approvedRecipe("Third")

	got, err := Recommend(history, nil, []*entities.Recipe{first, second, third}, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
	assert.Equal(t, "Third", got[2].Name)
}

func TestRecommendNegativeLimit(t *testing.T) {
	_, err := Recommend(nil, nil, []*entities.Recipe{approvedRecipe("A")}, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)
}

func TestRecommendTruncatesToLimit(t *testing.T) {
	candidates := make([]*entities.Recipe, 0, 25)
	for i := 0; i < 25; i++ {
		candidates = append(candidates, approvedRecipe("r"))
	}

	got, err := Recommend(nil, nil, candidates, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLimit)

	got, err = Recommend(nil, nil, candidates, 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestRecommendIdempotent(t *testing.T) {
	history := []*entities.CookingHistory{
		historyEntry("Italian", "Main Course"),
		historyEntry("Chinese", "Soup"),
	}
	candidates := []*entities.Recipe{}
	for i := 0; i < 10; i++ {
		r := approvedRecipe("r")
		r.Cuisine = []string{"Italian", "Chinese", "French"}[i%3]
		r.Category = []string{"Main Course", "Soup"}[i%2]
		r.AverageRating = float64(i%5) + 0.5
		r.CookCount = i * 7
		candidates = append(candidates, r)
	}

	first, err := Recommend(history, nil, candidates, 0)
	require.NoError(t, err)
	second, err := Recommend(history, nil, candidates, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecipeSimilarityIdenticalClone(t *testing.T) {
	reference := approvedRecipe("Ramen")
	reference.Cuisine = "Japanese"
	reference.Category = "Soup"
	reference.Difficulty = "Medium"
	reference.CookingTime = 45

	clone := *reference
	clone.ID = uuid.New()

	assert.InDelta(t, 1.0, RecipeSimilarity(reference, &clone), 1e-9)
}

func TestRecipeSimilarityZeroTimesSkipTimeFactor(t *testing.T) {
	a := approvedRecipe("A")
	a.Cuisine = "Greek"
	a.Category = "Salad"
	a.Difficulty = "Easy"
	b := approvedRecipe("B")
	b.Cuisine = "Greek"
	b.Category = "Salad"
	b.Difficulty = "Easy"

	assert.InDelta(t, 0.85, RecipeSimilarity(a, b), 1e-9)
}

func TestRecipeSimilarityTimeCloseness(t *testing.T) {
	a := approvedRecipe("A")
	a.CookingTime = 30
	b := approvedRecipe("B")
	b.CookingTime = 60

	// Both recipes carry empty cuisine/category/difficulty, which compare
	// equal: 0.85 from the enum factors plus (1 - 30/60)*0.15 for time.
	assert.InDelta(t, 0.85+0.075, RecipeSimilarity(a, b), 1e-9)
}

func TestSimilarRecipesExcludesReference(t *testing.T) {
	reference := approvedRecipe("Ref")
	reference.Cuisine = "Indian"
	other := approvedRecipe("Other")
	other.Cuisine = "Indian"
	unapproved := &entities.Recipe{ID: uuid.New(), Cuisine: "Indian"}

	got, err := SimilarRecipes(reference, []*entities.Recipe{reference, other, unapproved}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Other", got[0].Name)
}

func TestTrendingRecipesOrdering(t *testing.T) {
	a := approvedRecipe("A")
	a.CookCount = 100
	a.AverageRating = 1 // 110
	b := approvedRecipe("B")
	b.CookCount = 50
	b.AverageRating = 5 // 100
	c := approvedRecipe("C")
	c.CookCount = 80
	c.AverageRating = 4 // 120

	got, err := TrendingRecipes([]*entities.Recipe{a, b, c}, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestSeasonalRecipesWinter(t *testing.T) {
	soup := approvedRecipe("Hearty Soup")
	soup.Category = "Soup"
	soup.AverageRating = 4
	salad := approvedRecipe("Crisp Salad")
	salad.Category = "Salad"
	salad.AverageRating = 5
	punch := approvedRecipe("Winter Punch")
	punch.Category = "Beverage"
	punch.AverageRating = 4.5

	got, err := SeasonalRecipes([]*entities.Recipe{soup, salad, punch}, "winter", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Winter Punch", got[0].Name)
	assert.Equal(t, "Hearty Soup", got[1].Name)
}

func TestSeasonalRecipesUnknownSeasonMatchesNameOnly(t *testing.T) {
	monsoon := approvedRecipe("Monsoon Chai")
	monsoon.Category = "Beverage"
	soup := approvedRecipe("Plain Soup")
	soup.Category = "Soup"

	got, err := SeasonalRecipes([]*entities.Recipe{monsoon, soup}, "monsoon", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Monsoon Chai", got[0].Name)
}

func TestRankByCuisinePreference(t *testing.T) {
	profile := PreferenceProfile{Cuisines: map[string]int{"Thai": 3, "Italian": 1}}

	italian := approvedRecipe("Italian")
	italian.Cuisine = "Italian"
	thai := approvedRecipe("Thai")
	thai.Cuisine = "Thai"
	french := approvedRecipe("French")
	french.Cuisine = "French"

	input := []*entities.Recipe{italian, thai, french}
	ranked := RankByCuisinePreference(profile, input)

	assert.Equal(t, "Thai", ranked[0].Name)
	assert.Equal(t, "Italian", ranked[1].Name)
	assert.Equal(t, "French", ranked[2].Name)
	// Input slice order is untouched.
	assert.Equal(t, "Italian", input[0].Name)
}
