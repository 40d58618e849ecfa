// Package storage archives uploaded images to object storage.
//
// It wraps the MinIO Go client behind a small Client interface so archive
// behaviour can be tested with the mocks in core/storage/mocks. Both AWS S3
// and self-hosted MinIO instances are supported.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	archiver := storage.NewArchiver(client, cfg.Storage, logger)
//	if err := archiver.EnsureBucket(ctx); err != nil { ... }
//	object, err := archiver.Archive(ctx, data, "image/jpeg", "jpg")
package storage
