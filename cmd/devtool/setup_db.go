package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/RecipeBox_Go/internal/config"
)

type SetupDBCommand struct{}

func (c *SetupDBCommand) Name() string {
	return "setup-db"
}

func (c *SetupDBCommand) Description() string {
	return "Create the DB_NAME database if missing, then apply migrations"
}

func (c *SetupDBCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	// Connect to the default 'postgres' database to create the target one
	adminCfg := *cfg
	adminCfg.DBName = "postgres"
	conn, err := pgx.Connect(ctx, adminCfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		PrintInfo("Database %s already exists", cfg.DBName)
	} else {
		PrintInfo("Creating database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		PrintSuccess("Database created")
	}

	return (&MigrateCommand{}).Run(args)
}
