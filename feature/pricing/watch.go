package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// ErrWatchNotFound is returned for unknown tracking ids.
var ErrWatchNotFound = errors.New("price watch not found")

// Watch statuses.
const (
	StatusActive = "active"
)

// Watch is a price tracking registration.
// Only the registration is stored; prices are never persisted.
type Watch struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"-"`
	TrackingID  string    `gorm:"column:tracking_id;size:64;uniqueIndex" json:"tracking_id"`
	ProductID   string    `gorm:"column:product_id;size:255;index" json:"product_id"`
	Platform    string    `gorm:"column:platform;size:64" json:"platform"`
	TargetPrice *float64  `gorm:"column:target_price" json:"target_price"`
	NotifyEmail *string   `gorm:"column:notify_email;size:255" json:"notify_email"`
	NotifyPhone *string   `gorm:"column:notify_phone;size:32" json:"notify_phone"`
	Status      string    `gorm:"column:status;size:16" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (Watch) TableName() string {
	return "price_watches"
}

// Store keeps price watch registrations.
type Store interface {
	Save(ctx context.Context, w *Watch) error
	Get(ctx context.Context, trackingID string) (*Watch, error)
}

// GormStore keeps watches in the configured database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the price_watches table.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&Watch{}); err != nil {
		return fmt.Errorf("failed to migrate price watches: %w", err)
	}
	return nil
}

// Save inserts a new watch.
func (s *GormStore) Save(ctx context.Context, w *Watch) error {
	if err := s.db.WithContext(ctx).Create(w).Error; err != nil {
		return fmt.Errorf("failed to save price watch: %w", err)
	}
	return nil
}

// Get loads a watch by tracking id.
func (s *GormStore) Get(ctx context.Context, trackingID string) (*Watch, error) {
	var w Watch
	err := s.db.WithContext(ctx).Where("tracking_id = ?", trackingID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load price watch: %w", err)
	}
	return &w, nil
}

// MemoryStore keeps watches for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	watches map[string]Watch
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{watches: make(map[string]Watch)}
}

// Save stores a copy of w.
func (s *MemoryStore) Save(_ context.Context, w *Watch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watches[w.TrackingID] = *w
	return nil
}

// Get returns a copy of the stored watch.
func (s *MemoryStore) Get(_ context.Context, trackingID string) (*Watch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.watches[trackingID]
	if !ok {
		return nil, ErrWatchNotFound
	}
	return &w, nil
}
