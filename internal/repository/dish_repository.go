package repository

import (
	"context"
	"fmt"

	"hanoi-foodie/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// dishRepository implements the DishRepository interface using PostgreSQL.
type dishRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDishRepository creates a new PostgreSQL-backed dish repository.
func NewDishRepository(pool *pgxpool.Pool, logger zerolog.Logger) DishRepository {
	return &dishRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "dish").Logger(),
	}
}

// GetAll retrieves all dishes in identifier order.
func (r *dishRepository) GetAll(ctx context.Context) ([]model.Dish, error) {
	query := `
		SELECT id, name, description, images, notes
		FROM dishes
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query dishes")
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []model.Dish
	for rows.Next() {
		var d model.Dish
		err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Images, &d.Notes)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan dish row")
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating dish rows")
		return nil, fmt.Errorf("error iterating dishes: %w", err)
	}

	return dishes, nil
}

// InsertTx inserts a dish within the provided transaction and returns the
// generated identifier.
func (r *dishRepository) InsertTx(ctx context.Context, tx pgx.Tx, d *model.Dish) (int, error) {
	query := `
		INSERT INTO dishes (name, description, images, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := tx.QueryRow(ctx, query, d.Name, d.Description, d.Images, d.Notes).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).Str("name", d.Name).Msg("failed to insert dish")
		return 0, fmt.Errorf("failed to insert dish %q: %w", d.Name, err)
	}

	return id, nil
}
