package service

import (
	"context"
	"fmt"

	"hanoi-foodie/internal/fixture"
	"hanoi-foodie/internal/model"
	"hanoi-foodie/internal/repository"

	"github.com/rs/zerolog"
)

// loaderService implements LoaderService.
type loaderService struct {
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	menuRepo       repository.MenuRepository
	logger         zerolog.Logger
}

// NewLoaderService creates a new bulk loader service.
func NewLoaderService(
	restaurantRepo repository.RestaurantRepository,
	dishRepo repository.DishRepository,
	menuRepo repository.MenuRepository,
	logger zerolog.Logger,
) LoaderService {
	return &loaderService{
		restaurantRepo: restaurantRepo,
		dishRepo:       dishRepo,
		menuRepo:       menuRepo,
		logger:         logger.With().Str("service", "loader").Logger(),
	}
}

// LoadAll inserts all fixture records in one transaction. Restaurant and dish
// identifiers are captured into name-keyed maps scoped to this load; menu
// links are resolved against those maps only, so a link naming an entity
// absent from the fixtures aborts the load. Duplicate names insert duplicate
// rows and the map keeps the last id (last-write-wins).
func (s *loaderService) LoadAll(ctx context.Context, set *fixture.Set) (*LoadSummary, error) {
	tx, err := s.menuRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	restaurantIDs := make(map[string]int, len(set.Restaurants))
	for i := range set.Restaurants {
		rec := &set.Restaurants[i]
		s.logger.Info().Str("name", rec.Name).Msg("adding restaurant")

		rest := &model.Restaurant{
			Name:         rec.Name,
			Address:      rec.Address,
			Website:      rec.Website,
			GoogleURL:    rec.GoogleURL,
			Rating:       rec.Rating,
			Phone:        rec.Phone,
			OpeningHours: rec.OpeningHours,
			Images:       rec.Images,
			Notes:        rec.Notes,
		}

		var id int
		if id, err = s.restaurantRepo.InsertTx(ctx, tx, rest); err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		restaurantIDs[rec.Name] = id
	}

	dishIDs := make(map[string]int, len(set.Dishes))
	for i := range set.Dishes {
		rec := &set.Dishes[i]
		s.logger.Info().Str("name", rec.Name).Msg("adding dish")

		dish := &model.Dish{
			Name:        rec.Name,
			Description: rec.Description,
			Images:      rec.Images,
			Notes:       rec.Notes,
		}

		var id int
		if id, err = s.dishRepo.InsertTx(ctx, tx, dish); err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
		dishIDs[rec.Name] = id
	}

	for _, link := range set.Links {
		s.logger.Info().
			Str("restaurant", link.Restaurant).
			Str("dish", link.Dish).
			Msg("adding menu entry")

		restaurantID, ok := restaurantIDs[link.Restaurant]
		if !ok {
			err = fmt.Errorf("%w: %q", model.ErrUnknownRestaurant, link.Restaurant)
			return nil, err
		}

		dishID, ok := dishIDs[link.Dish]
		if !ok {
			err = fmt.Errorf("%w: %q", model.ErrUnknownDish, link.Dish)
			return nil, err
		}

		if err = s.menuRepo.InsertTx(ctx, tx, restaurantID, dishID, link.Price); err != nil {
			return nil, fmt.Errorf("failed to load fixtures: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	summary := &LoadSummary{
		Restaurants: len(set.Restaurants),
		Dishes:      len(set.Dishes),
		MenuEntries: len(set.Links),
	}

	s.logger.Info().
		Int("restaurants", summary.Restaurants).
		Int("dishes", summary.Dishes).
		Int("menu_entries", summary.MenuEntries).
		Msg("fixtures loaded successfully")

	return summary, nil
}
