package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Store implements Store for uploading product images to AWS S3.
type s3Store struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Store creates a new S3-backed image store.
func NewS3Store(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Store, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	// Load AWS configuration
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
		Msg("S3 image store initialised")

	return &s3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Save uploads the image and returns its object URL.
func (s *s3Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	key := s.prefix + path.Base(name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to upload image to S3")
		return "", fmt.Errorf("failed to upload image to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("image uploaded to S3")

	return url, nil
}

// fallbackStore tries S3 first and falls back to the local filesystem when the
// upload fails.
type fallbackStore struct {
	s3Store   Store
	fileStore Store
	logger    zerolog.Logger
}

// NewFallbackStore creates a store that prefers s3Store and falls back to
// fileStore on error. If s3Store is nil, only the file store is used.
func NewFallbackStore(s3Store, fileStore Store, logger zerolog.Logger) Store {
	return &fallbackStore{
		s3Store:   s3Store,
		fileStore: fileStore,
		logger:    logger.With().Str("component", "fallback-image-store").Logger(),
	}
}

// Save uploads to S3 when configured, otherwise (or on failure) writes
// locally. The image is buffered so the fallback gets a fresh reader after a
// failed upload.
func (s *fallbackStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if s.s3Store == nil {
		return s.fileStore.Save(ctx, name, r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", name, err)
	}

	location, err := s.s3Store.Save(ctx, name, bytes.NewReader(data))
	if err == nil {
		return location, nil
	}

	s.logger.Warn().
		Err(err).
		Str("name", name).
		Msg("S3 upload failed, falling back to local file system")

	return s.fileStore.Save(ctx, name, bytes.NewReader(data))
}
