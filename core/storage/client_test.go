package storage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"shopping-agent/core/storage"
	"shopping-agent/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func archiveConfig() storage.Config {
	return storage.Config{Bucket: "uploads-bucket", Prefix: "/uploads/", Region: "eu-west-1"}
}

func TestArchiver_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "uploads-bucket").Return(true, nil)

		a := storage.NewArchiver(client, archiveConfig(), zap.NewNop())
		require.NoError(t, a.EnsureBucket(ctx))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "uploads-bucket").Return(false, nil)
		client.On("MakeBucket", ctx, "uploads-bucket", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		a := storage.NewArchiver(client, archiveConfig(), zap.NewNop())
		require.NoError(t, a.EnsureBucket(ctx))
		client.AssertExpectations(t)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "uploads-bucket").Return(false, errors.New("connection refused"))

		a := storage.NewArchiver(client, archiveConfig(), zap.NewNop())
		assert.ErrorContains(t, a.EnsureBucket(ctx), "connection refused")
	})
}

func TestArchiver_Archive(t *testing.T) {
	ctx := context.Background()
	data := []byte{0xFF, 0xD8, 0xFF}

	client := new(mocks.Client)
	client.On("PutObject", ctx, "uploads-bucket", mock.AnythingOfType("string"), mock.Anything, int64(3),
		minio.PutObjectOptions{ContentType: "image/jpeg"}).Return(minio.UploadInfo{}, nil)

	a := storage.NewArchiver(client, archiveConfig(), zap.NewNop())
	object, err := a.Archive(ctx, data, "image/jpeg", "jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(object, "uploads/"))
	assert.True(t, strings.HasSuffix(object, ".jpg"))
	assert.Len(t, strings.Split(object, "/"), 5)
	client.AssertExpectations(t)
}

func TestArchiver_ArchiveError(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	a := storage.NewArchiver(client, archiveConfig(), zap.NewNop())
	_, err := a.Archive(ctx, []byte("x"), "image/png", "png")
	assert.ErrorContains(t, err, "access denied")
}
