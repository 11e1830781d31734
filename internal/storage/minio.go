package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds S3-compatible storage connection settings.
type MinioConfig struct {
	Endpoint        string // e.g. "minio:9000" or "s3.example.com"
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Bucket          string // e.g. "projects"

	// PublicBaseURL is the base under which objects are publicly reachable.
	// When empty it is derived from the endpoint and bucket.
	PublicBaseURL string
}

// MinioStorage stores images in one S3-compatible bucket with public-read
// objects, mirroring the hosted storage the site originally used.
type MinioStorage struct {
	mc            *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioStorage creates a MinioStorage and ensures the bucket exists.
func NewMinioStorage(ctx context.Context, cfg MinioConfig) (*MinioStorage, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: minio client: %w", err)
	}

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: bucket check: %w", err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: make bucket: %w", err)
		}
	}

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStorage{mc: mc, bucket: cfg.Bucket, publicBaseURL: base}, nil
}

var _ Storage = (*MinioStorage)(nil)

func (s *MinioStorage) Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error) {
	_, err := s.mc.PutObject(ctx, s.bucket, key, data, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return s.publicBaseURL + "/" + key, nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.mc.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: remove %s: %w", key, err)
	}
	return nil
}

// DeleteMany batch-deletes objects through the MinIO remove channel and
// returns the first reported error, if any.
func (s *MinioStorage) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objects <- minio.ObjectInfo{Key: key}
	}
	close(objects)

	var firstErr error
	for result := range s.mc.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		if result.Err != nil && firstErr == nil {
			firstErr = fmt.Errorf("storage: remove %s: %w", result.ObjectName, result.Err)
		}
	}
	return firstErr
}
