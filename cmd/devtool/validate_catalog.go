package main

import (
	"fmt"
	"os"

	"github.com/osse101/RecipeBox_Go/internal/catalog"
)

type ValidateCatalogCommand struct{}

func (c *ValidateCatalogCommand) Name() string {
	return "validate-catalog"
}

func (c *ValidateCatalogCommand) Description() string {
	return "Validate catalog data files and schemas in a directory"
}

func (c *ValidateCatalogCommand) Run(args []string) error {
	dir := "internal/catalog/data"
	if len(args) > 0 {
		dir = args[0]
	}

	PrintHeader(fmt.Sprintf("Validating catalog in %s", dir))

	cat, err := catalog.Load(os.DirFS(dir))
	if err != nil {
		return err
	}

	PrintSuccess("%d recipes in %d categories", len(cat.All()), len(cat.Categories()))
	return nil
}
