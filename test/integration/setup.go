package integration

import (
	"context"
	"testing"
	"time"

	"hanoi-foodie/internal/fixture"
	"hanoi-foodie/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	pool, err := repository.NewPool(ctx, connStr, nil)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Create schema
	schema := repository.NewSchemaManager(pool, zerolog.Nop())
	if err := schema.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := repository.NewSchemaManager(pool, zerolog.Nop())
	if err := schema.ResetData(ctx); err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

// SampleFixtureSet returns a small fixture set matching the checked-in
// sample data shape.
func SampleFixtureSet() *fixture.Set {
	rating := 4.2
	notes := "Cash only."
	description := "Beef noodle soup"

	return &fixture.Set{
		Restaurants: []fixture.Restaurant{
			{
				Name:    "Pho Thin",
				Address: "13 Lo Duc",
				Rating:  &rating,
				Images:  []string{"pho-thin.jpg"},
				Notes:   &notes,
			},
			{
				Name:    "Bun Cha Huong Lien",
				Address: "24 Le Van Huu",
				Images:  []string{},
			},
		},
		Dishes: []fixture.Dish{
			{Name: "Pho Bo", Description: &description, Images: []string{}},
			{Name: "Bun Cha", Images: []string{}},
		},
		Links: []fixture.MenuLink{
			{Restaurant: "Pho Thin", Dish: "Pho Bo", Price: 50000},
			{Restaurant: "Bun Cha Huong Lien", Dish: "Bun Cha", Price: 40000},
			{Restaurant: "Bun Cha Huong Lien", Dish: "Pho Bo", Price: 45000},
		},
	}
}
