package fixture

import (
	"context"
)

// Fixture document names, relative to the fixture directory (or S3 prefix).
const (
	RestaurantsFile = "restaurants.json"
	DishesFile      = "dishes.json"
	LinksFile       = "restaurant_dishes.json"
)

// Restaurant is one record of the restaurants fixture document. Field tags
// match the snake_case keys of the source JSON.
type Restaurant struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Website      *string  `json:"website"`
	GoogleURL    *string  `json:"google_url"`
	Rating       *float64 `json:"rating"`
	Phone        *string  `json:"phone"`
	OpeningHours *string  `json:"opening_hours"`
	Images       []string `json:"images"`
	Notes        *string  `json:"notes"`
}

// Dish is one record of the dishes fixture document.
type Dish struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Notes       *string  `json:"notes"`
}

// MenuLink is one record of the restaurant_dishes fixture document. It
// references restaurant and dish by name; ids are resolved during the load.
type MenuLink struct {
	Restaurant string `json:"restaurant"`
	Dish       string `json:"dish"`
	Price      int    `json:"price"`
}

// Set holds the three fixture collections in source order.
type Set struct {
	Restaurants []Restaurant
	Dishes      []Dish
	Links       []MenuLink
}

// Loader defines the interface for loading the fixture set.
type Loader interface {
	// Load reads the three fixture documents and returns them as a Set.
	// A missing or malformed document fails the whole load.
	Load(ctx context.Context) (*Set, error)
}
