package repository

import (
	"context"

	"hanoi-foodie/internal/model"

	"github.com/jackc/pgx/v5"
)

// SchemaManager defines schema lifecycle operations for the store.
type SchemaManager interface {
	// EnsureSchema creates the restaurants, dishes and restaurant_dishes
	// tables if they do not exist. Safe to call repeatedly.
	EnsureSchema(ctx context.Context) error

	// ResetData removes all rows from all three tables without dropping the
	// schema. Destructive and irreversible.
	ResetData(ctx context.Context) error
}

// RestaurantRepository defines the interface for restaurant data access operations.
type RestaurantRepository interface {
	// GetAll retrieves all restaurants in identifier order.
	GetAll(ctx context.Context) ([]model.Restaurant, error)

	// InsertTx inserts a restaurant within the provided transaction and
	// returns the generated identifier.
	InsertTx(ctx context.Context, tx pgx.Tx, r *model.Restaurant) (int, error)
}

// DishRepository defines the interface for dish data access operations.
type DishRepository interface {
	// GetAll retrieves all dishes in identifier order.
	GetAll(ctx context.Context) ([]model.Dish, error)

	// InsertTx inserts a dish within the provided transaction and returns
	// the generated identifier.
	InsertTx(ctx context.Context, tx pgx.Tx, d *model.Dish) (int, error)
}

// MenuRepository defines the interface for menu entry data access operations.
type MenuRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// InsertTx inserts one restaurant-dish-price row within the provided
	// transaction.
	InsertTx(ctx context.Context, tx pgx.Tx, restaurantID, dishID, price int) error

	// GetAll retrieves all menu entries joined to restaurant and dish names.
	GetAll(ctx context.Context) ([]model.MenuEntry, error)
}
