package pricing

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	store   Store
}

// NewStore returns a database backed store when db is set, an in-memory one otherwise.
func NewStore(db *gorm.DB) Store {
	if db == nil {
		return NewMemoryStore()
	}
	return NewGormStore(db)
}

// NewFeature creates a new Pricing feature. db may be nil.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	store := NewStore(db)
	svc := NewService(store, logger)
	return &Feature{service: svc, handler: NewHandler(svc), store: store}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pricing"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the watch table if needed and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if gs, ok := f.store.(*GormStore); ok {
		if err := gs.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
