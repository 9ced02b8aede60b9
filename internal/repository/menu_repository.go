package repository

import (
	"context"
	"fmt"

	"hanoi-foodie/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *menuRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// InsertTx inserts one restaurant-dish-price row within the provided transaction.
func (r *menuRepository) InsertTx(ctx context.Context, tx pgx.Tx, restaurantID, dishID, price int) error {
	query := `
		INSERT INTO restaurant_dishes (restaurant_id, dish_id, price)
		VALUES ($1, $2, $3)
	`

	_, err := tx.Exec(ctx, query, restaurantID, dishID, price)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("restaurant_id", restaurantID).
			Int("dish_id", dishID).
			Msg("failed to insert menu entry")
		return fmt.Errorf("failed to insert menu entry: %w", err)
	}

	return nil
}

// GetAll retrieves all menu entries joined to restaurant and dish names.
func (r *menuRepository) GetAll(ctx context.Context) ([]model.MenuEntry, error) {
	query := `
		SELECT r.name AS restaurant, d.name AS dish, rd.price
		FROM restaurant_dishes rd
		JOIN restaurants r ON rd.restaurant_id = r.id
		JOIN dishes d ON rd.dish_id = d.id
		ORDER BY rd.restaurant_id, rd.dish_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu entries")
		return nil, fmt.Errorf("failed to query menu entries: %w", err)
	}
	defer rows.Close()

	var entries []model.MenuEntry
	for rows.Next() {
		var e model.MenuEntry
		err := rows.Scan(&e.Restaurant, &e.Dish, &e.Price)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu entry row")
			return nil, fmt.Errorf("failed to scan menu entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu entry rows")
		return nil, fmt.Errorf("error iterating menu entries: %w", err)
	}

	return entries, nil
}
