package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"hanoi-foodie/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Loader implements Loader for reading fixture documents from AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based fixture loader. Documents are read from
// bucket under the given key prefix.
func NewS3Loader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-fixture-loader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 fixture loader initialised")

	return &s3Loader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Load reads the three fixture documents from S3.
func (l *s3Loader) Load(ctx context.Context) (*Set, error) {
	l.logger.Info().
		Str("bucket", l.bucket).
		Str("prefix", l.prefix).
		Msg("loading fixture documents from S3")

	set := &Set{}

	if err := l.readDocument(ctx, RestaurantsFile, &set.Restaurants); err != nil {
		return nil, err
	}
	if err := l.readDocument(ctx, DishesFile, &set.Dishes); err != nil {
		return nil, err
	}
	if err := l.readDocument(ctx, LinksFile, &set.Links); err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Int("restaurants", len(set.Restaurants)).
		Int("dishes", len(set.Dishes)).
		Int("links", len(set.Links)).
		Msg("fixture documents loaded successfully from S3")

	return set, nil
}

// readDocument fetches and decodes one fixture document from S3 into out.
func (l *s3Loader) readDocument(ctx context.Context, name string, out any) error {
	key := l.prefix + name

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get fixture document from S3")
		return fmt.Errorf("%w: failed to get s3://%s/%s: %v", model.ErrFixtureParse, l.bucket, key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to read fixture document body")
		return fmt.Errorf("%w: failed to read s3://%s/%s: %v", model.ErrFixtureParse, l.bucket, key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to decode fixture document")
		return fmt.Errorf("%w: failed to decode s3://%s/%s: %v", model.ErrFixtureParse, l.bucket, key, err)
	}

	return nil
}

// fallbackLoader implements a loader that tries S3 first, then falls back to
// the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to
// the local file system. If s3Loader is nil, only the file loader is used.
func NewFallbackLoader(s3Loader, fileLoader Loader, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		logger:     logger.With().Str("component", "fallback-fixture-loader").Logger(),
	}
}

// Load attempts to load from S3 first, then falls back to the local file
// system.
func (l *fallbackLoader) Load(ctx context.Context) (*Set, error) {
	if l.s3Loader != nil {
		set, err := l.s3Loader.Load(ctx)
		if err == nil {
			l.logger.Info().Msg("fixtures loaded from S3")
			return set, nil
		}

		l.logger.Warn().
			Err(err).
			Msg("failed to load fixtures from S3, falling back to local file system")
	} else {
		l.logger.Debug().Msg("S3 not configured, using local file system")
	}

	return l.fileLoader.Load(ctx)
}
