package catalog

// Bundled data files, relative to the catalog filesystem
const (
	RecipesFile          = "recipes.json"
	CategoriesFile       = "categories.json"
	RecipesSchemaFile    = "recipes.schema.json"
	CategoriesSchemaFile = "categories.schema.json"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Recipe catalog loaded"
)
