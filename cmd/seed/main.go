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

// Seeds the database from the fixture documents: ensures the schema exists,
// removes all existing rows, then loads everything in one transaction.
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
	logger.Info().Msg("seeding database from fixtures")

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
	if err := schema.ResetData(ctx); err != nil {
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
		Msg("database seeded successfully")

	return nil
}
