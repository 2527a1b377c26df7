package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/RecipeBox_Go/internal/bootstrap"
	"github.com/osse101/RecipeBox_Go/internal/config"
	"github.com/osse101/RecipeBox_Go/internal/domain"
	"github.com/osse101/RecipeBox_Go/internal/kvstore"
)

type CheckStorageCommand struct{}

func (c *CheckStorageCommand) Name() string {
	return "check-storage"
}

func (c *CheckStorageCommand) Description() string {
	return "Connect to the configured storage backend and report what it holds"
}

func (c *CheckStorageCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Checking %s storage", cfg.StorageBackend))

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer kvstore.Close(store)

	start := time.Now()
	if err := kvstore.Ping(ctx, store); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	PrintSuccess("Backend reachable (%v)", time.Since(start))

	reports, err := inspectKeys(ctx, store, []string{domain.StorageKeyFavorites, domain.StorageKeyCustomRecipes})
	if err != nil {
		return err
	}
	for _, r := range reports {
		switch {
		case r.Malformed != nil:
			PrintWarning("%s: %v", r.Key, r.Malformed)
		case !r.Found:
			PrintInfo("%s: not set", r.Key)
		default:
			PrintSuccess("%s: %d entries", r.Key, r.Count)
		}
	}
	return nil
}

// keyReport describes one stored collection
type keyReport struct {
	Key       string
	Found     bool
	Count     int
	Malformed error
}

// inspectKeys reads keys concurrently. A backend read failure on any key
// cancels the others and fails the check; a value that does not decode is reported.
func inspectKeys(ctx context.Context, store kvstore.Store, keys []string) ([]keyReport, error) {
	reports := make([]keyReport, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			var items []interface{}
			found, err := kvstore.GetJSON(gctx, store, key, &items)
			if err != nil && !errors.Is(err, kvstore.ErrMalformed) {
				return fmt.Errorf("reading %s: %w", key, err)
			}
			reports[i] = keyReport{Key: key, Found: found, Count: len(items), Malformed: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
