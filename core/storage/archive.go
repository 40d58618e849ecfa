package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver stores uploaded images under date-partitioned object names.
type Archiver struct {
	client Client
	bucket string
	prefix string
	region string
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiver creates an archiver writing into cfg.Bucket.
func NewArchiver(client Client, cfg Config, logger *zap.Logger) *Archiver {
	return &Archiver{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		region: cfg.Region,
		logger: logger,
		now:    time.Now,
	}
}

// EnsureBucket creates the archive bucket when it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	a.logger.Info("Created archive bucket", zap.String("bucket", a.bucket))
	return nil
}

// ObjectName builds the key for a new upload, e.g. uploads/2024/05/01/<uuid>.jpg.
func (a *Archiver) ObjectName(ext string) string {
	name := uuid.NewString()
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return path.Join(a.prefix, a.now().UTC().Format("2006/01/02"), name)
}

// Archive uploads data and returns the object name.
func (a *Archiver) Archive(ctx context.Context, data []byte, contentType, ext string) (string, error) {
	object := a.ObjectName(ext)
	_, err := a.client.PutObject(ctx, a.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", object, err)
	}
	return object, nil
}
