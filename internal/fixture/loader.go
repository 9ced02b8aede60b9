package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hanoi-foodie/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading fixture documents from a local
// directory.
type fileLoader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based fixture loader rooted at dir.
func NewFileLoader(dir string, logger zerolog.Logger) Loader {
	return &fileLoader{
		dir:    dir,
		logger: logger.With().Str("component", "fixture-loader").Logger(),
	}
}

// Load reads the three fixture documents from the loader's directory.
func (l *fileLoader) Load(ctx context.Context) (*Set, error) {
	l.logger.Info().Str("dir", l.dir).Msg("loading fixture documents")

	set := &Set{}

	if err := l.readDocument(RestaurantsFile, &set.Restaurants); err != nil {
		return nil, err
	}
	if err := l.readDocument(DishesFile, &set.Dishes); err != nil {
		return nil, err
	}
	if err := l.readDocument(LinksFile, &set.Links); err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("dir", l.dir).
		Int("restaurants", len(set.Restaurants)).
		Int("dishes", len(set.Dishes)).
		Int("links", len(set.Links)).
		Msg("fixture documents loaded successfully")

	return set, nil
}

// readDocument reads and decodes one fixture document into out.
func (l *fileLoader) readDocument(name string, out any) error {
	path := filepath.Join(l.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read fixture document")
		return fmt.Errorf("%w: failed to read %s: %v", model.ErrFixtureParse, path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode fixture document")
		return fmt.Errorf("%w: failed to decode %s: %v", model.ErrFixtureParse, path, err)
	}

	return nil
}
