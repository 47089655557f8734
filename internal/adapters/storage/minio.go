package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ImageStore persists subject images and returns the URL they are served from.
type ImageStore interface {
	UploadImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type MinIOStore struct {
	client  objectPutter
	bucket  string
	baseURL string
	log     *zap.Logger
}

// NewMinIOStore connects to endpoint and creates bucket when it is missing. publicURL, when
// set, replaces the endpoint as the prefix of returned image URLs.
func NewMinIOStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, publicURL string, log *zap.Logger) (*MinIOStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info("Created MinIO bucket", zap.String("bucket", bucket))
	}

	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}

	log.Info("Successfully connected to MinIO", zap.String("endpoint", endpoint))
	return newMinIOStore(client, bucket, publicURL, log), nil
}

func newMinIOStore(client objectPutter, bucket, baseURL string, log *zap.Logger) *MinIOStore {
	return &MinIOStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.Named("minio"),
	}
}

func (m *MinIOStore) UploadImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	objectName := ObjectName(filename)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	m.log.Info("Image uploaded", zap.String("object", objectName), zap.Int64("size", size))
	return fmt.Sprintf("%s/%s/%s", m.baseURL, m.bucket, objectName), nil
}

// ObjectName derives a collision free key under images/ that keeps the file extension.
func ObjectName(filename string) string {
	return "images/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// IsImage reports whether contentType is an image media type.
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
