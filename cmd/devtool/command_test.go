package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/kvstore/kvstoretest"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&ValidateCatalogCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&MigrateCommand{})

	cmd, ok := r.Get("migrate")
	require.True(t, ok)
	assert.Equal(t, "migrate", cmd.Name())

	_, ok = r.Get("deploy")
	assert.False(t, ok)

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"health-check", "migrate", "validate-catalog"}, names)
}

func TestValidateCatalogCommand(t *testing.T) {
	require.NoError(t, (&ValidateCatalogCommand{}).Run([]string{"../../internal/catalog/data"}))
	assert.Error(t, (&ValidateCatalogCommand{}).Run([]string{t.TempDir()}))
}

func TestAPIURL(t *testing.T) {
	t.Setenv(envAPIURL, "")
	assert.Equal(t, defaultAPIURL, apiURL())
	t.Setenv(envAPIURL, "http://recipes:9000")
	assert.Equal(t, "http://recipes:9000", apiURL())
}

func TestInspectKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstoretest.New()
	store.Put(domain.StorageKeyFavorites, `[{"idFood":"1"},{"idFood":"2"}]`)
	store.Put(domain.StorageKeyCustomRecipes, "{broken")

	reports, err := inspectKeys(ctx, store, []string{domain.StorageKeyFavorites, domain.StorageKeyCustomRecipes, "missing"})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.True(t, reports[0].Found)
	assert.Equal(t, 2, reports[0].Count)
	assert.NoError(t, reports[0].Malformed)

	assert.ErrorIs(t, reports[1].Malformed, kvstore.ErrMalformed)

	assert.False(t, reports[2].Found)
	assert.Equal(t, "missing", reports[2].Key)
}

func TestInspectKeys_ReadFailure(t *testing.T) {
	store := kvstoretest.New()
	store.FailReads(true)

	_, err := inspectKeys(context.Background(), store, []string{domain.StorageKeyFavorites, domain.StorageKeyCustomRecipes})
	require.Error(t, err)
	assert.ErrorIs(t, err, kvstore.ErrRead)
}
