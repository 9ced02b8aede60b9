package service

import (
	"context"
	"fmt"

	"hanoi-foodie/internal/model"
	"hanoi-foodie/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	restaurantRepo repository.RestaurantRepository
	dishRepo       repository.DishRepository
	menuRepo       repository.MenuRepository
	logger         zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(
	restaurantRepo repository.RestaurantRepository,
	dishRepo repository.DishRepository,
	menuRepo repository.MenuRepository,
	logger zerolog.Logger,
) MenuService {
	return &menuService{
		restaurantRepo: restaurantRepo,
		dishRepo:       dishRepo,
		menuRepo:       menuRepo,
		logger:         logger.With().Str("service", "menu").Logger(),
	}
}

// Restaurants retrieves all restaurants.
func (s *menuService) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get restaurants")
		return nil, fmt.Errorf("failed to get restaurants: %w", err)
	}

	s.logger.Debug().Int("count", len(restaurants)).Msg("retrieved restaurants")

	return restaurants, nil
}

// Dishes retrieves all dishes.
func (s *menuService) Dishes(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.dishRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get dishes")
		return nil, fmt.Errorf("failed to get dishes: %w", err)
	}

	s.logger.Debug().Int("count", len(dishes)).Msg("retrieved dishes")

	return dishes, nil
}

// MenuEntries retrieves the joined restaurant-dish-price view.
func (s *menuService) MenuEntries(ctx context.Context) ([]model.MenuEntry, error) {
	entries, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get menu entries")
		return nil, fmt.Errorf("failed to get menu entries: %w", err)
	}

	s.logger.Debug().Int("count", len(entries)).Msg("retrieved menu entries")

	return entries, nil
}

// DishesAt returns the dishes served at the named restaurant, in the order
// they appear in dishes. Pure function over already-loaded data.
func DishesAt(restaurantName string, dishes []model.Dish, entries []model.MenuEntry) []model.Dish {
	served := make(map[string]bool)
	for _, e := range entries {
		if e.Restaurant == restaurantName {
			served[e.Dish] = true
		}
	}

	var result []model.Dish
	for _, d := range dishes {
		if served[d.Name] {
			result = append(result, d)
		}
	}
	return result
}

// RestaurantsServing returns the restaurants serving the named dish, in the
// order they appear in restaurants.
func RestaurantsServing(dishName string, restaurants []model.Restaurant, entries []model.MenuEntry) []model.Restaurant {
	serving := make(map[string]bool)
	for _, e := range entries {
		if e.Dish == dishName {
			serving[e.Restaurant] = true
		}
	}

	var result []model.Restaurant
	for _, r := range restaurants {
		if serving[r.Name] {
			result = append(result, r)
		}
	}
	return result
}

// PriceOf returns the first listed price for the restaurant-dish pair. The
// second return value is false when the pair has no listed price; zero is
// never used as a sentinel.
func PriceOf(restaurantName, dishName string, entries []model.MenuEntry) (int, bool) {
	for _, e := range entries {
		if e.Restaurant == restaurantName && e.Dish == dishName {
			return e.Price, true
		}
	}
	return 0, false
}
