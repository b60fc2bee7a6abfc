package recommendation

import (
	"math"
	"sort"
	"strings"

	"recipe-hub/domain"
	"recipe-hub/entities"

	"github.com/google/uuid"
)

const DefaultLimit = 18

// Score weights. They are applied independently and deliberately do not sum
// to 1; a recipe matching every signal can score slightly above 1.0.
const (
	weightCuisine     = 0.4
	weightCategory    = 0.3
	weightOwnRating   = 0.2
	popularityCeiling = 0.1
)

// PreferenceProfile holds per-cuisine and per-category cook counts derived
// from a user's cooking history. It is recomputed per request, never stored.
type PreferenceProfile struct {
	Cuisines   map[string]int
	Categories map[string]int
}

// BuildPreferenceProfile counts cuisine and category occurrences across the
// history. Entries missing a cuisine or category are skipped for that count.
func BuildPreferenceProfile(history []*entities.CookingHistory) PreferenceProfile {
	profile := PreferenceProfile{
		Cuisines:   make(map[string]int),
		Categories: make(map[string]int),
	}

	for _, entry := range history {
		if entry.Cuisine != "" {
			profile.Cuisines[entry.Cuisine]++
		}
		if entry.Category != "" {
			profile.Categories[entry.Category]++
		}
	}

	return profile
}

// ScoreRecipe computes the personalized relevance score of a recipe:
// cuisine affinity (0.4), category affinity (0.3), the user's own rating
// (0.2) and community popularity capped at 0.1. Missing inputs contribute
// zero rather than failing.
func ScoreRecipe(recipe *entities.Recipe, profile PreferenceProfile, historyLen int, ratings map[uuid.UUID]int) float64 {
	var score float64

	if historyLen > 0 {
		score += float64(profile.Cuisines[recipe.Cuisine]) / float64(historyLen) * weightCuisine
		score += float64(profile.Categories[recipe.Category]) / float64(historyLen) * weightCategory
	}

	if rating, ok := ratings[recipe.ID]; ok {
		score += float64(rating) / 5 * weightOwnRating
	}

	popularity := recipe.AverageRating/5*0.05 + float64(recipe.CookCount)/1000*0.05
	score += math.Min(popularity, popularityCeiling)

	return score
}

// Recommend ranks the approved candidates for a user. With no cooking
// history it falls back to popularity ordering (cook count, then average
// rating). Otherwise every approved candidate is scored against the user's
// preference profile; exact score ties keep the original candidate order.
// A limit of 0 means DefaultLimit; a negative limit is a caller error.
func Recommend(history []*entities.CookingHistory, ratings map[uuid.UUID]int, candidates []*entities.Recipe, limit int) ([]*entities.Recipe, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	approved := filterApproved(candidates)

	if len(history) == 0 {
		sort.SliceStable(approved, func(i, j int) bool {
			if approved[i].CookCount != approved[j].CookCount {
				return approved[i].CookCount > approved[j].CookCount
			}
			return approved[i].AverageRating > approved[j].AverageRating
		})
		return truncate(approved, limit), nil
	}

	profile := BuildPreferenceProfile(history)
	scores := make(map[uuid.UUID]float64, len(approved))
	for _, recipe := range approved {
		scores[recipe.ID] = ScoreRecipe(recipe, profile, len(history), ratings)
	}

	sort.SliceStable(approved, func(i, j int) bool {
		return scores[approved[i].ID] > scores[approved[j].ID]
	})

	return truncate(approved, limit), nil
}

// RecipeSimilarity scores how alike two recipes are: equal cuisine 0.4,
// equal category 0.3, equal difficulty 0.15, and cooking-time closeness
// worth up to 0.15. The time factor contributes nothing when both times
// are zero.
func RecipeSimilarity(a, b *entities.Recipe) float64 {
	var similarity float64

	if a.Cuisine == b.Cuisine {
		similarity += 0.4
	}
	if a.Category == b.Category {
		similarity += 0.3
	}
	if a.Difficulty == b.Difficulty {
		similarity += 0.15
	}

	maxTime := a.CookingTime
	if b.CookingTime > maxTime {
		maxTime = b.CookingTime
	}
	if maxTime > 0 {
		diff := a.CookingTime - b.CookingTime
		if diff < 0 {
			diff = -diff
		}
		similarity += (1 - float64(diff)/float64(maxTime)) * 0.15
	}

	return similarity
}

// SimilarRecipes returns the approved candidates most similar to the
// reference recipe, which is itself excluded by id.
func SimilarRecipes(reference *entities.Recipe, candidates []*entities.Recipe, limit int) ([]*entities.Recipe, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	pool := make([]*entities.Recipe, 0, len(candidates))
	for _, recipe := range candidates {
		if recipe.Approved && recipe.ID != reference.ID {
			pool = append(pool, recipe)
		}
	}

	scores := make(map[uuid.UUID]float64, len(pool))
	for _, recipe := range pool {
		scores[recipe.ID] = RecipeSimilarity(reference, recipe)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return scores[pool[i].ID] > scores[pool[j].ID]
	})

	return truncate(pool, limit), nil
}

// TrendingRecipes orders approved candidates by cookCount + averageRating*10.
func TrendingRecipes(candidates []*entities.Recipe, limit int) ([]*entities.Recipe, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	approved := filterApproved(candidates)
	sort.SliceStable(approved, func(i, j int) bool {
		scoreI := float64(approved[i].CookCount) + approved[i].AverageRating*10
		scoreJ := float64(approved[j].CookCount) + approved[j].AverageRating*10
		return scoreI > scoreJ
	})

	return truncate(approved, limit), nil
}

var seasonalCategories = map[string][]string{
	"winter": {"Soup", "Main Course", "Dessert"},
	"summer": {"Salad", "Beverage", "Snack"},
	"spring": {"Salad", "Appetizer", "Beverage"},
	"autumn": {"Soup", "Main Course", "Dessert"},
}

// SeasonalRecipes keeps approved candidates whose category is on the
// season's allow-list or whose name contains the season token, ordered by
// average rating. An unknown season matches by name token only.
func SeasonalRecipes(candidates []*entities.Recipe, season string, limit int) ([]*entities.Recipe, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	season = strings.ToLower(season)
	allowed := make(map[string]bool)
	for _, category := range seasonalCategories[season] {
		allowed[category] = true
	}

	pool := make([]*entities.Recipe, 0, len(candidates))
	for _, recipe := range candidates {
		if !recipe.Approved {
			continue
		}
		if allowed[recipe.Category] || strings.Contains(strings.ToLower(recipe.Name), season) {
			pool = append(pool, recipe)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].AverageRating > pool[j].AverageRating
	})

	return truncate(pool, limit), nil
}

// RankByCuisinePreference reorders recipes so cuisines the user cooks most
// come first, keeping the incoming order between equals.
func RankByCuisinePreference(profile PreferenceProfile, recipes []*entities.Recipe) []*entities.Recipe {
	ranked := make([]*entities.Recipe, len(recipes))
	copy(ranked, recipes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return profile.Cuisines[ranked[i].Cuisine] > profile.Cuisines[ranked[j].Cuisine]
	})
	return ranked
}

// RankByCategoryPreference is the category counterpart of
// RankByCuisinePreference.
func RankByCategoryPreference(profile PreferenceProfile, recipes []*entities.Recipe) []*entities.Recipe {
	ranked := make([]*entities.Recipe, len(recipes))
	copy(ranked, recipes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return profile.Categories[ranked[i].Category] > profile.Categories[ranked[j].Category]
	})
	return ranked
}

func filterApproved(recipes []*entities.Recipe) []*entities.Recipe {
	approved := make([]*entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.Approved {
			approved = append(approved, recipe)
		}
	}
	return approved
}

func truncate(recipes []*entities.Recipe, limit int) []*entities.Recipe {
	if len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}
