package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hanoi-foodie/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, dir string, docs map[string]string) {
	t.Helper()
	for name, content := range docs {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		require.NoError(t, err)
	}
}

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		RestaurantsFile: `[
			{"name": "Pho Thin", "address": "13 Lo Duc", "rating": 4.2, "images": ["a.jpg"]},
			{"name": "Banh Mi 25", "address": "25 Hang Ca", "images": []}
		]`,
		DishesFile: `[
			{"name": "Pho Bo", "description": "Beef noodle soup", "images": []}
		]`,
		LinksFile: `[
			{"restaurant": "Pho Thin", "dish": "Pho Bo", "price": 50000}
		]`,
	})

	loader := NewFileLoader(dir, zerolog.Nop())

	set, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, set)

	require.Len(t, set.Restaurants, 2)
	assert.Equal(t, "Pho Thin", set.Restaurants[0].Name)
	assert.Equal(t, "13 Lo Duc", set.Restaurants[0].Address)
	require.NotNil(t, set.Restaurants[0].Rating)
	assert.Equal(t, 4.2, *set.Restaurants[0].Rating)
	assert.Nil(t, set.Restaurants[0].Website)
	assert.Equal(t, []string{"a.jpg"}, set.Restaurants[0].Images)

	require.Len(t, set.Dishes, 1)
	assert.Equal(t, "Pho Bo", set.Dishes[0].Name)

	require.Len(t, set.Links, 1)
	assert.Equal(t, "Pho Thin", set.Links[0].Restaurant)
	assert.Equal(t, "Pho Bo", set.Links[0].Dish)
	assert.Equal(t, 50000, set.Links[0].Price)
}

func TestFileLoader_Load_PreservesSourceOrder(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		RestaurantsFile: `[
			{"name": "C", "address": "c"},
			{"name": "A", "address": "a"},
			{"name": "B", "address": "b"}
		]`,
		DishesFile: `[]`,
		LinksFile:  `[]`,
	})

	loader := NewFileLoader(dir, zerolog.Nop())

	set, err := loader.Load(context.Background())
	require.NoError(t, err)

	names := make([]string, len(set.Restaurants))
	for i, r := range set.Restaurants {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestFileLoader_Load_MissingDocument(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		RestaurantsFile: `[]`,
		DishesFile:      `[]`,
		// LinksFile intentionally absent
	})

	loader := NewFileLoader(dir, zerolog.Nop())

	set, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrFixtureParse)
	assert.Nil(t, set)
}

func TestFileLoader_Load_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		RestaurantsFile: `{"not": "a list"`,
		DishesFile:      `[]`,
		LinksFile:       `[]`,
	})

	loader := NewFileLoader(dir, zerolog.Nop())

	set, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrFixtureParse)
	assert.Nil(t, set)
}

func TestFallbackLoader_UsesFileLoaderWhenNoS3(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		RestaurantsFile: `[{"name": "Pho Thin", "address": "13 Lo Duc"}]`,
		DishesFile:      `[]`,
		LinksFile:       `[]`,
	})

	loader := NewFallbackLoader(nil, NewFileLoader(dir, zerolog.Nop()), zerolog.Nop())

	set, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, set.Restaurants, 1)
}

type failingLoader struct{}

func (failingLoader) Load(ctx context.Context) (*Set, error) {
	return nil, assert.AnError
}

func TestFallbackLoader_FallsBackOnS3Error(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir, map[string]string{
		RestaurantsFile: `[{"name": "Pho Thin", "address": "13 Lo Duc"}]`,
		DishesFile:      `[]`,
		LinksFile:       `[]`,
	})

	loader := NewFallbackLoader(failingLoader{}, NewFileLoader(dir, zerolog.Nop()), zerolog.Nop())

	set, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, set.Restaurants, 1)
}
