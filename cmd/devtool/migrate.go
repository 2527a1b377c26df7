package main

import (
	"context"
	"fmt"

	"github.com/osse101/RecipeBox_Go/internal/config"
	"github.com/osse101/RecipeBox_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply the embedded Postgres migrations using DB_* settings"
}

func (c *MigrateCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Migrating %s@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName))

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	PrintSuccess("Migrations applied")
	return nil
}
