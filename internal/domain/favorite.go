package domain

import (
	"encoding/json"
	"fmt"
)

// FavoriteKind tells which variant a FavoriteEntry holds
type FavoriteKind string

const (
	FavoriteKindCatalog FavoriteKind = "catalog"
	FavoriteKindCustom  FavoriteKind = "custom"
)

// Valid reports whether k is a known kind
func (k FavoriteKind) Valid() bool {
	return k == FavoriteKindCatalog || k == FavoriteKindCustom
}

// FavoriteKey identifies a favorite. Two entries with equal keys are the same favorite.
type FavoriteKey struct {
	Kind FavoriteKind `json:"kind"`
	ID   string       `json:"id"`
}

func (k FavoriteKey) String() string {
	return string(k.Kind) + ":" + k.ID
}

// FavoriteEntry is a by-value copy of either a catalog recipe or a custom recipe
type FavoriteEntry struct {
	Kind         FavoriteKind  `json:"kind"`
	Recipe       *Recipe       `json:"recipe,omitempty"`
	CustomRecipe *CustomRecipe `json:"customRecipe,omitempty"`
}

// NewCatalogFavorite wraps a catalog recipe
func NewCatalogFavorite(r Recipe) FavoriteEntry {
	return FavoriteEntry{Kind: FavoriteKindCatalog, Recipe: &r}
}

// NewCustomFavorite wraps a custom recipe
func NewCustomFavorite(r CustomRecipe) FavoriteEntry {
	return FavoriteEntry{Kind: FavoriteKindCustom, CustomRecipe: &r}
}

// Key derives the identity of the entry. Custom recipes persisted before
// IDs existed are keyed by title.
func (e FavoriteEntry) Key() FavoriteKey {
	switch e.Kind {
	case FavoriteKindCatalog:
		if e.Recipe == nil {
			return FavoriteKey{Kind: e.Kind}
		}
		return FavoriteKey{Kind: e.Kind, ID: e.Recipe.IDFood}
	case FavoriteKindCustom:
		if e.CustomRecipe == nil {
			return FavoriteKey{Kind: e.Kind}
		}
		if e.CustomRecipe.ID == "" {
			return LegacyCustomKey(e.CustomRecipe.Title)
		}
		return FavoriteKey{Kind: e.Kind, ID: e.CustomRecipe.ID}
	}
	return FavoriteKey{Kind: e.Kind}
}

// LegacyCustomKey is the key of a custom favorite stored before recipes had IDs
func LegacyCustomKey(title string) FavoriteKey {
	return FavoriteKey{Kind: FavoriteKindCustom, ID: title}
}

// IsLegacyCustom reports whether e is a custom favorite keyed by title
func (e FavoriteEntry) IsLegacyCustom() bool {
	return e.Kind == FavoriteKindCustom && e.CustomRecipe != nil && e.CustomRecipe.ID == ""
}

// Validate checks that the entry carries the payload its kind requires and has an identity
func (e FavoriteEntry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidFavorite, e.Kind)
	}
	if e.Kind == FavoriteKindCatalog && e.Recipe == nil {
		return fmt.Errorf("%w: catalog entry without recipe", ErrInvalidFavorite)
	}
	if e.Kind == FavoriteKindCustom && e.CustomRecipe == nil {
		return fmt.Errorf("%w: custom entry without recipe", ErrInvalidFavorite)
	}
	if e.Key().ID == "" {
		return fmt.Errorf("%w: empty identity", ErrInvalidFavorite)
	}
	return nil
}

// Title returns the display name of the underlying recipe
func (e FavoriteEntry) Title() string {
	switch {
	case e.Recipe != nil:
		return e.Recipe.Name
	case e.CustomRecipe != nil:
		return e.CustomRecipe.Title
	}
	return ""
}

// UnmarshalJSON decodes tagged entries as well as the older flat shape,
// where the stored object was the recipe itself (idFood for catalog
// recipes, title for custom ones).
func (e *FavoriteEntry) UnmarshalJSON(data []byte) error {
	type tagged FavoriteEntry
	var t tagged
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if t.Kind != "" {
		*e = FavoriteEntry(t)
		return nil
	}

	var shape struct {
		IDFood string `json:"idFood"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}

	switch {
	case shape.IDFood != "":
		var r Recipe
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*e = NewCatalogFavorite(r)
	case shape.Title != "":
		var r CustomRecipe
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*e = NewCustomFavorite(r)
	default:
		return fmt.Errorf("%w: entry has neither idFood nor title", ErrInvalidFavorite)
	}
	return nil
}
