package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Ingredient is a single ingredient line of a recipe
type Ingredient struct {
	Name    string `json:"ingredientName"`
	Measure string `json:"measure,omitempty"`
}

// Recipe is a bundled catalog recipe. Catalog recipes are read-only.
type Recipe struct {
	IDFood       string       `json:"idFood"`
	Name         string       `json:"recipeName"`
	Description  string       `json:"description,omitempty"`
	Category     string       `json:"category"`
	Image        string       `json:"recipeImage"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"recipeInstructions"`
}

// Category groups catalog recipes for browsing
type Category struct {
	Name      string `json:"strCategory"`
	Thumbnail string `json:"strCategoryThumb"`
}

// CustomRecipe is a recipe authored by the user and persisted locally
type CustomRecipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Image       string       `json:"image"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Description string       `json:"description"`
	Category    string       `json:"category,omitempty"`
	PrepTime    string       `json:"prepTime,omitempty"`
	Servings    string       `json:"servings,omitempty"`
	Calories    string       `json:"calories,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty"`
	CreatedAt   time.Time    `json:"createdAt,omitzero"`
	UpdatedAt   time.Time    `json:"updatedAt,omitzero"`
}

// UnmarshalJSON accepts both the current shape and the older shapes where
// ingredients were a semicolon-delimited string or missing entirely.
func (c *CustomRecipe) UnmarshalJSON(data []byte) error {
	type plain CustomRecipe
	var raw struct {
		plain
		Ingredients json.RawMessage `json:"ingredients,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CustomRecipe(raw.plain)
	c.Ingredients = nil

	if len(raw.Ingredients) == 0 || string(raw.Ingredients) == "null" {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw.Ingredients, &text); err == nil {
		c.Ingredients = ParseIngredients(text)
		return nil
	}

	return json.Unmarshal(raw.Ingredients, &c.Ingredients)
}

// RecipeForm holds the user-entered fields of the custom recipe form.
// Ingredients are entered as free text separated by IngredientSeparator.
type RecipeForm struct {
	Title       string `json:"title" validate:"required,max=200"`
	Image       string `json:"image" validate:"required,max=2048"`
	Ingredients string `json:"ingredients,omitempty"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	PrepTime    string `json:"prepTime,omitempty" validate:"max=100"`
	Servings    string `json:"servings,omitempty" validate:"max=100"`
	Calories    string `json:"calories,omitempty" validate:"max=100"`
	Difficulty  string `json:"difficulty,omitempty" validate:"max=100"`
}

// Trimmed returns a copy of the form with surrounding whitespace removed from every field
func (f RecipeForm) Trimmed() RecipeForm {
	return RecipeForm{
		Title:       strings.TrimSpace(f.Title),
		Image:       strings.TrimSpace(f.Image),
		Ingredients: strings.TrimSpace(f.Ingredients),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
		PrepTime:    strings.TrimSpace(f.PrepTime),
		Servings:    strings.TrimSpace(f.Servings),
		Calories:    strings.TrimSpace(f.Calories),
		Difficulty:  strings.TrimSpace(f.Difficulty),
	}
}

// ApplyTo copies the form fields onto r. ID and timestamps are left alone.
func (f RecipeForm) ApplyTo(r *CustomRecipe) {
	r.Title = f.Title
	r.Image = f.Image
	r.Ingredients = ParseIngredients(f.Ingredients)
	r.Description = f.Description
	r.Category = f.Category
	r.PrepTime = f.PrepTime
	r.Servings = f.Servings
	r.Calories = f.Calories
	r.Difficulty = f.Difficulty
}

// ParseIngredients splits free text on IngredientSeparator, trimming each
// piece and dropping empty ones.
func ParseIngredients(text string) []Ingredient {
	var out []Ingredient
	for _, part := range strings.Split(text, IngredientSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, Ingredient{Name: part})
	}
	return out
}

// FormatIngredients is the inverse of ParseIngredients, used to pre-fill the edit form
func FormatIngredients(ingredients []Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.Measure != "" {
			parts = append(parts, ing.Measure+" "+ing.Name)
			continue
		}
		parts = append(parts, ing.Name)
	}
	return strings.Join(parts, IngredientSeparator+" ")
}
