package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schemaManager implements the SchemaManager interface using PostgreSQL.
type schemaManager struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSchemaManager creates a new PostgreSQL-backed schema manager.
func NewSchemaManager(pool *pgxpool.Pool, logger zerolog.Logger) SchemaManager {
	return &schemaManager{
		pool:   pool,
		logger: logger.With().Str("repository", "schema").Logger(),
	}
}

// EnsureSchema creates the three tables if they do not exist.
func (m *schemaManager) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			address TEXT NOT NULL,
			website TEXT,
			google_url TEXT,
			rating FLOAT,
			phone VARCHAR(20),
			opening_hours VARCHAR(100),
			images TEXT[],
			notes TEXT
		);

		CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			images TEXT[],
			notes TEXT
		);

		CREATE TABLE IF NOT EXISTS restaurant_dishes (
			restaurant_id INTEGER REFERENCES restaurants(id),
			dish_id INTEGER REFERENCES dishes(id),
			price INTEGER NOT NULL,
			PRIMARY KEY (restaurant_id, dish_id)
		);
	`

	if _, err := m.pool.Exec(ctx, schema); err != nil {
		m.logger.Error().Err(err).Msg("failed to create schema")
		return fmt.Errorf("failed to create schema: %w", err)
	}

	m.logger.Info().Msg("schema ensured")

	return nil
}

// ResetData removes all rows from all three tables. The relationship table is
// covered by CASCADE.
func (m *schemaManager) ResetData(ctx context.Context) error {
	if _, err := m.pool.Exec(ctx, "TRUNCATE restaurants, dishes, restaurant_dishes CASCADE"); err != nil {
		m.logger.Error().Err(err).Msg("failed to reset data")
		return fmt.Errorf("failed to reset data: %w", err)
	}

	m.logger.Warn().Msg("all restaurant, dish and menu rows removed")

	return nil
}
