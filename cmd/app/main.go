package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/RecipeBox_Go/internal/bootstrap"
	"github.com/osse101/RecipeBox_Go/internal/catalog"
	"github.com/osse101/RecipeBox_Go/internal/config"
	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/favorites"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
	"github.com/osse101/RecipeBox_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title RecipeBox API
// @version 1.0
// @description Recipe catalog browsing, favorites and user-authored recipes.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatalf("RecipeBox failed: %v", err)
	}
}

func run() error {
	if err := config.ValidateEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, _ := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.NewDefault()
	if err != nil {
		return err
	}

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, hub := bootstrap.InitializeEventSystem()

	favoriteService := favorites.NewService(store, bus)
	customService := customrecipe.NewService(store, bus)
	if err := bootstrap.HydrateStores(ctx, favoriteService, customService); err != nil {
		hub.Stop()
		_ = kvstore.Close(store)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	srv := server.NewServer(server.Options{
		Addr:               cfg.Addr(),
		Version:            cfg.Version,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxRequestBytes:    cfg.MaxRequestBytes,
	}, server.Services{
		Catalog:       cat,
		Favorites:     favoriteService,
		CustomRecipes: customService,
		Storage:       kvstore.Checker(store),
		Hub:           hub,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    hub,
		Store:  store,
	})

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return serveErr
	}
	return nil
}
