package integration

import (
	"context"
	"testing"

	"hanoi-foodie/internal/fixture"
	"hanoi-foodie/internal/model"
	"hanoi-foodie/internal/repository"
	"hanoi-foodie/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(testDB *TestDB) (service.LoaderService, service.MenuService) {
	logger := zerolog.Nop()

	restaurantRepo := repository.NewRestaurantRepository(testDB.Pool, logger)
	dishRepo := repository.NewDishRepository(testDB.Pool, logger)
	menuRepo := repository.NewMenuRepository(testDB.Pool, logger)

	loader := service.NewLoaderService(restaurantRepo, dishRepo, menuRepo, logger)
	menu := service.NewMenuService(restaurantRepo, dishRepo, menuRepo, logger)

	return loader, menu
}

func TestBulkLoad_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	loader, menu := newServices(testDB)
	ctx := context.Background()

	t.Run("Round-trip preserves counts and order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		set := SampleFixtureSet()
		summary, err := loader.LoadAll(ctx, set)
		require.NoError(t, err)
		assert.Equal(t, len(set.Restaurants), summary.Restaurants)
		assert.Equal(t, len(set.Dishes), summary.Dishes)
		assert.Equal(t, len(set.Links), summary.MenuEntries)

		restaurants, err := menu.Restaurants(ctx)
		require.NoError(t, err)
		require.Len(t, restaurants, len(set.Restaurants))
		assert.Equal(t, "Pho Thin", restaurants[0].Name)
		assert.Equal(t, "Bun Cha Huong Lien", restaurants[1].Name)
		require.NotNil(t, restaurants[0].Rating)
		assert.Equal(t, 4.2, *restaurants[0].Rating)

		dishes, err := menu.Dishes(ctx)
		require.NoError(t, err)
		assert.Len(t, dishes, len(set.Dishes))

		entries, err := menu.MenuEntries(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, len(set.Links))
	})

	t.Run("Menu entry names resolve to stored entities", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := loader.LoadAll(ctx, SampleFixtureSet())
		require.NoError(t, err)

		restaurants, err := menu.Restaurants(ctx)
		require.NoError(t, err)
		dishes, err := menu.Dishes(ctx)
		require.NoError(t, err)
		entries, err := menu.MenuEntries(ctx)
		require.NoError(t, err)

		restaurantNames := make(map[string]bool)
		for _, r := range restaurants {
			restaurantNames[r.Name] = true
		}
		dishNames := make(map[string]bool)
		for _, d := range dishes {
			dishNames[d.Name] = true
		}

		for _, e := range entries {
			assert.True(t, restaurantNames[e.Restaurant], "unresolved restaurant %q", e.Restaurant)
			assert.True(t, dishNames[e.Dish], "unresolved dish %q", e.Dish)
		}
	})

	t.Run("Filtering helpers over loaded data", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := loader.LoadAll(ctx, SampleFixtureSet())
		require.NoError(t, err)

		restaurants, err := menu.Restaurants(ctx)
		require.NoError(t, err)
		dishes, err := menu.Dishes(ctx)
		require.NoError(t, err)
		entries, err := menu.MenuEntries(ctx)
		require.NoError(t, err)

		at := service.DishesAt("Pho Thin", dishes, entries)
		require.Len(t, at, 1)
		assert.Equal(t, "Pho Bo", at[0].Name)

		serving := service.RestaurantsServing("Pho Bo", restaurants, entries)
		require.Len(t, serving, 2)
		assert.Equal(t, "Pho Thin", serving[0].Name)

		price, ok := service.PriceOf("Pho Thin", "Pho Bo", entries)
		require.True(t, ok)
		assert.Equal(t, 50000, price)

		_, ok = service.PriceOf("Pho Thin", "Bun Cha", entries)
		assert.False(t, ok)
	})

	t.Run("Unknown link name rolls back the whole load", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		set := SampleFixtureSet()
		set.Links = append(set.Links, fixture.MenuLink{
			Restaurant: "Nonexistent", Dish: "Pho Bo", Price: 10000,
		})

		summary, err := loader.LoadAll(ctx, set)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownRestaurant)
		assert.Nil(t, summary)

		// Nothing from the failed run is visible.
		restaurants, err := menu.Restaurants(ctx)
		require.NoError(t, err)
		assert.Empty(t, restaurants)

		dishes, err := menu.Dishes(ctx)
		require.NoError(t, err)
		assert.Empty(t, dishes)

		entries, err := menu.MenuEntries(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Reset and reseed", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := loader.LoadAll(ctx, SampleFixtureSet())
		require.NoError(t, err)

		schema := repository.NewSchemaManager(testDB.Pool, zerolog.Nop())
		require.NoError(t, schema.ResetData(ctx))

		_, err = loader.LoadAll(ctx, SampleFixtureSet())
		require.NoError(t, err)

		restaurants, err := menu.Restaurants(ctx)
		require.NoError(t, err)
		assert.Len(t, restaurants, 2)
	})
}
