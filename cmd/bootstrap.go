package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"shopping-agent/core/config"
	"shopping-agent/core/database"
	"shopping-agent/core/logger"
	"shopping-agent/core/source/registry"
	"shopping-agent/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env bundles what every command needs.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *registry.Registry
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	reg, err := registry.New(ctx, cfg.Sources, cfg.OpenAI, cfg.Gemini, logg)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logg, registry: reg}, nil
}

// connectDatabase returns nil when the database is disabled or unreachable.
func (a *env) connectDatabase() *gorm.DB {
	if !a.cfg.Database.Enabled {
		return nil
	}
	db, err := database.Connect(a.cfg.Database)
	if err != nil {
		a.logger.Warn("Optional database connection failed, price watches stay in memory", zap.Error(err))
		return nil
	}
	a.logger.Info("Connected to price watch database", zap.String("driver", a.cfg.Database.Driver))
	return db
}

// connectArchive returns nil when archiving is disabled or the bucket is unusable.
func (a *env) connectArchive(ctx context.Context) *storage.Archiver {
	if !a.cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		a.logger.Warn("Failed to create storage client, uploads will not be archived", zap.Error(err))
		return nil
	}
	archiver := storage.NewArchiver(client, a.cfg.Storage, a.logger)
	if err := archiver.EnsureBucket(ctx); err != nil {
		a.logger.Warn("Upload archive unavailable", zap.Error(err))
		return nil
	}
	a.logger.Info("Upload archive enabled", zap.String("bucket", a.cfg.Storage.Bucket))
	return archiver
}

// writeResult prints v as indented JSON to stdout or to --output.
func writeResult(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
