package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Create schema
	schema := NewSchemaManager(pool, zerolog.Nop())
	require.NoError(t, schema.EnsureSchema(ctx))

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// tableNames returns the user tables present in the public schema.
func tableNames(t *testing.T, pool *pgxpool.Pool) []string {
	ctx := context.Background()

	rows, err := pool.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())

	return names
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	ctx := context.Background()

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)

	return count
}

func TestSchemaManager_EnsureSchema_Idempotent(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	schema := NewSchemaManager(pool, zerolog.Nop())

	// setupTestDB already ensured the schema once; a second and third call
	// must not fail or duplicate anything.
	require.NoError(t, schema.EnsureSchema(ctx))
	require.NoError(t, schema.EnsureSchema(ctx))

	assert.Equal(t, []string{"dishes", "restaurant_dishes", "restaurants"}, tableNames(t, pool))
}

func TestSchemaManager_ResetData(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	logger := zerolog.Nop()

	schema := NewSchemaManager(pool, logger)
	restaurantRepo := NewRestaurantRepository(pool, logger)
	dishRepo := NewDishRepository(pool, logger)
	menuRepo := NewMenuRepository(pool, logger)

	tx, err := menuRepo.BeginTx(ctx)
	require.NoError(t, err)

	restID, err := restaurantRepo.InsertTx(ctx, tx, testRestaurant("Pho Thin"))
	require.NoError(t, err)
	dishID, err := dishRepo.InsertTx(ctx, tx, testDish("Pho Bo"))
	require.NoError(t, err)
	require.NoError(t, menuRepo.InsertTx(ctx, tx, restID, dishID, 50000))
	require.NoError(t, tx.Commit(ctx))

	require.Equal(t, 1, countRows(t, pool, "restaurants"))
	require.Equal(t, 1, countRows(t, pool, "dishes"))
	require.Equal(t, 1, countRows(t, pool, "restaurant_dishes"))

	require.NoError(t, schema.ResetData(ctx))

	assert.Equal(t, 0, countRows(t, pool, "restaurants"))
	assert.Equal(t, 0, countRows(t, pool, "dishes"))
	assert.Equal(t, 0, countRows(t, pool, "restaurant_dishes"))

	// Schema survives the reset.
	assert.Equal(t, []string{"dishes", "restaurant_dishes", "restaurants"}, tableNames(t, pool))
}
