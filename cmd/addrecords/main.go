package main

import (
	"context"
	"fmt"
	"os"

	"hanoi-foodie/internal/config"
	"hanoi-foodie/internal/database"
	"hanoi-foodie/internal/fixture"
	"hanoi-foodie/internal/repository"
	"hanoi-foodie/internal/service"
)

// Appends the fixture records to the database without touching existing
// rows. The schema is ensured first so the command works on a fresh database.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("adding records from fixtures")

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	schema := repository.NewSchemaManager(pool, logger)
	if err := schema.EnsureSchema(ctx); err != nil {
		return err
	}

	set, err := fixture.NewConfiguredLoader(ctx, cfg.Fixtures, logger).Load(ctx)
	if err != nil {
		return err
	}

	restaurantRepo := repository.NewRestaurantRepository(pool, logger)
	dishRepo := repository.NewDishRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)

	loader := service.NewLoaderService(restaurantRepo, dishRepo, menuRepo, logger)
	summary, err := loader.LoadAll(ctx, set)
	if err != nil {
		return err
	}

	logger.Info().
		Int("restaurants", summary.Restaurants).
		Int("dishes", summary.Dishes).
		Int("menu_entries", summary.MenuEntries).
		Msg("records added successfully")

	return nil
}
