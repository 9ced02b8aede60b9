package repository

import (
	"context"
	"fmt"

	"hanoi-foodie/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// restaurantRepository implements the RestaurantRepository interface using PostgreSQL.
type restaurantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantRepository creates a new PostgreSQL-backed restaurant repository.
func NewRestaurantRepository(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantRepository {
	return &restaurantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "restaurant").Logger(),
	}
}

// GetAll retrieves all restaurants in identifier order.
func (r *restaurantRepository) GetAll(ctx context.Context) ([]model.Restaurant, error) {
	query := `
		SELECT id, name, address, website, google_url, rating, phone, opening_hours, images, notes
		FROM restaurants
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query restaurants")
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		err := rows.Scan(
			&rest.ID,
			&rest.Name,
			&rest.Address,
			&rest.Website,
			&rest.GoogleURL,
			&rest.Rating,
			&rest.Phone,
			&rest.OpeningHours,
			&rest.Images,
			&rest.Notes,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan restaurant row")
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating restaurant rows")
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}

// InsertTx inserts a restaurant within the provided transaction and returns
// the generated identifier.
func (r *restaurantRepository) InsertTx(ctx context.Context, tx pgx.Tx, rest *model.Restaurant) (int, error) {
	query := `
		INSERT INTO restaurants (name, address, website, google_url, rating, phone, opening_hours, images, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int
	err := tx.QueryRow(ctx, query,
		rest.Name,
		rest.Address,
		rest.Website,
		rest.GoogleURL,
		rest.Rating,
		rest.Phone,
		rest.OpeningHours,
		rest.Images,
		rest.Notes,
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", rest.Name).Msg("failed to insert restaurant")
		return 0, fmt.Errorf("failed to insert restaurant %q: %w", rest.Name, err)
	}

	return id, nil
}
