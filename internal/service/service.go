package service

import (
	"context"

	"hanoi-foodie/internal/fixture"
	"hanoi-foodie/internal/model"
)

// LoadSummary reports how many rows a bulk load inserted.
type LoadSummary struct {
	Restaurants int
	Dishes      int
	MenuEntries int
}

// LoaderService defines the one-shot bulk load that turns fixtures into
// persisted rows.
type LoaderService interface {
	// LoadAll inserts all fixture records in one transaction: restaurants,
	// then dishes, then the name-resolved menu links. Any failure rolls the
	// whole batch back.
	LoadAll(ctx context.Context, set *fixture.Set) (*LoadSummary, error)
}

// MenuService defines the read-only operations the browsing views consume.
type MenuService interface {
	// Restaurants retrieves all restaurants.
	Restaurants(ctx context.Context) ([]model.Restaurant, error)

	// Dishes retrieves all dishes.
	Dishes(ctx context.Context) ([]model.Dish, error)

	// MenuEntries retrieves the joined restaurant-dish-price view.
	MenuEntries(ctx context.Context) ([]model.MenuEntry, error)
}
