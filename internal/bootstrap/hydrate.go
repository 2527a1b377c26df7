package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/favorites"
)

// HydrateStores loads both stores from durable storage concurrently.
// Storage problems leave a store empty and are logged by the store; they never fail startup.
// An error is returned only when ctx ends before hydration completes.
func HydrateStores(ctx context.Context, fav favorites.Service, custom customrecipe.Service) error {
	start := time.Now()
	slog.Info(LogMsgHydratingStores)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fav.Load(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		custom.Load(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		slog.Warn(LogMsgHydrationInterrupted, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgHydrationInterrupted, err)
	}

	slog.Info(LogMsgStoresHydrated,
		"favorites", len(fav.List()),
		"custom_recipes", len(custom.List()),
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
