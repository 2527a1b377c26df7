package domain

// Storage keys. Both values are JSON arrays.
const (
	StorageKeyFavorites     = "favoriteRecipes"
	StorageKeyCustomRecipes = "customrecipes"
)

// IngredientSeparator splits the free-text ingredient list of the recipe form
const IngredientSeparator = ";"

// DefaultCategory is the category shown before the user picks one
const DefaultCategory = "Chicken"
