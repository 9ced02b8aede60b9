package fixture

import (
	"context"

	"hanoi-foodie/internal/config"

	"github.com/rs/zerolog"
)

// NewConfiguredLoader builds the fixture loader described by the
// configuration: S3 with local fallback when enabled, plain local file system
// otherwise. A failed S3 initialisation degrades to the local loader.
func NewConfiguredLoader(ctx context.Context, cfg config.FixturesConfig, logger zerolog.Logger) Loader {
	fileLoader := NewFileLoader(cfg.Dir, logger)

	if !cfg.S3Enabled {
		logger.Info().Str("dir", cfg.Dir).Msg("using local file system for fixtures (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return NewFallbackLoader(s3Loader, fileLoader, logger)
}
