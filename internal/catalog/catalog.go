// Package catalog serves the read-only recipe catalog bundled with the binary
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/validation"
)

//go:embed data/*.json
var bundled embed.FS

// Service is the read API of the catalog
type Service interface {
	Categories() []domain.Category
	ByCategory(name string) []domain.Recipe
	Get(idFood string) (domain.Recipe, error)
	Search(query string) []domain.Recipe
	All() []domain.Recipe
}

// Catalog holds validated catalog data. It is immutable after Load.
type Catalog struct {
	recipes    []domain.Recipe
	categories []domain.Category
	byID       map[string]int
	// folded is the case-folded search text of each recipe, aligned with recipes
	folded []string
}

// NewDefault loads the catalog bundled with the binary
func NewDefault() (*Catalog, error) {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads, validates and indexes the catalog files found in fsys
func Load(fsys fs.FS) (*Catalog, error) {
	v := validation.NewSchemaValidator(fsys)
	if err := v.ValidateFile(CategoriesFile, CategoriesSchemaFile); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", CategoriesFile, err)
	}
	if err := v.ValidateFile(RecipesFile, RecipesSchemaFile); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", RecipesFile, err)
	}

	var categories []domain.Category
	if err := readJSON(fsys, CategoriesFile, &categories); err != nil {
		return nil, err
	}
	var recipes []domain.Recipe
	if err := readJSON(fsys, RecipesFile, &recipes); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Name] = true
	}

	caser := cases.Fold()
	c := &Catalog{
		recipes:    recipes,
		categories: categories,
		byID:       make(map[string]int, len(recipes)),
		folded:     make([]string, len(recipes)),
	}
	for i, r := range recipes {
		if _, dup := c.byID[r.IDFood]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q in %s", r.IDFood, RecipesFile)
		}
		if !known[r.Category] {
			return nil, fmt.Errorf("recipe %q has unknown category %q", r.IDFood, r.Category)
		}
		c.byID[r.IDFood] = i
		c.folded[i] = caser.String(searchText(r))
	}

	slog.Default().Info(LogMsgCatalogLoaded, "recipes", len(recipes), "categories", len(categories))
	return c, nil
}

func readJSON(fsys fs.FS, name string, v interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func searchText(r domain.Recipe) string {
	var b strings.Builder
	b.WriteString(r.Name)
	for _, ing := range r.Ingredients {
		b.WriteByte('\n')
		b.WriteString(ing.Name)
	}
	return b.String()
}

// Categories returns the categories in bundled order
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByCategory returns the recipes of a category, matched case-insensitively
func (c *Catalog) ByCategory(name string) []domain.Recipe {
	out := []domain.Recipe{}
	for _, r := range c.recipes {
		if strings.EqualFold(r.Category, name) {
			out = append(out, r)
		}
	}
	return out
}

// Get returns the recipe with the given idFood
func (c *Catalog) Get(idFood string) (domain.Recipe, error) {
	i, ok := c.byID[idFood]
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, idFood)
	}
	return c.recipes[i], nil
}

// Search matches query against recipe names and ingredient names.
// An empty query matches nothing.
func (c *Catalog) Search(query string) []domain.Recipe {
	out := []domain.Recipe{}
	query = strings.TrimSpace(query)
	if query == "" {
		return out
	}
	needle := cases.Fold().String(query)
	for i, text := range c.folded {
		if strings.Contains(text, needle) {
			out = append(out, c.recipes[i])
		}
	}
	return out
}

// All returns every recipe in bundled order
func (c *Catalog) All() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}
