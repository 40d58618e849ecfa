package pricing

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrMissingProduct is returned when a request lacks its product id or platform.
	ErrMissingProduct = errors.New("product id and platform are required")
	// ErrMissingName is returned when a buying options request has no product name.
	ErrMissingName = errors.New("product name is required")
	// ErrInvalidDays is returned for history windows outside 1..MaxHistoryDays.
	ErrInvalidDays = errors.New("days must be between 1 and 365")
	// ErrInvalidTarget is returned for negative target prices.
	ErrInvalidTarget = errors.New("target price must not be negative")
)

const (
	// DefaultHistoryDays is the history window when none is requested.
	DefaultHistoryDays = 30
	// MaxHistoryDays caps the history window.
	MaxHistoryDays = 365

	currency = "USD"
)

// TrackOptions are the optional parts of a tracking registration.
type TrackOptions struct {
	TargetPrice *float64 `json:"target_price"`
	NotifyEmail *string  `json:"notify_email"`
	NotifyPhone *string  `json:"notify_phone"`
}

// PricePoint is one day of price history.
type PricePoint struct {
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	InStock  bool    `json:"in_stock"`
}

// History is the price history of a product, oldest day first.
type History struct {
	ProductID    string       `json:"product_id"`
	Platform     string       `json:"platform"`
	Currency     string       `json:"currency"`
	PriceHistory []PricePoint `json:"price_history"`
	LowestPrice  float64      `json:"lowest_price"`
	HighestPrice float64      `json:"highest_price"`
	AveragePrice float64      `json:"average_price"`
	CurrentPrice float64      `json:"current_price"`
}

// Seller is one merchant offering a product.
type Seller struct {
	Name      string  `json:"name"`
	Rating    float64 `json:"rating"`
	Price     float64 `json:"price"`
	Condition string  `json:"condition,omitempty"`
}

// Offer groups the sellers of one product condition.
type Offer struct {
	Price        float64  `json:"price"`
	Availability string   `json:"availability"`
	Condition    string   `json:"condition,omitempty"`
	Shipping     string   `json:"shipping"`
	Warranty     string   `json:"warranty"`
	Sellers      []Seller `json:"sellers"`
}

// Offers holds one Offer per condition.
type Offers struct {
	New         Offer `json:"new"`
	Used        Offer `json:"used"`
	Refurbished Offer `json:"refurbished"`
}

// BuyingOptions compares new, used and refurbished offers for a product.
type BuyingOptions struct {
	ProductName    string `json:"product_name"`
	Options        Offers `json:"options"`
	BestValue      string `json:"best_value"`
	Recommendation string `json:"recommendation"`
}

// Service handles price tracking, history and buying options.
type Service struct {
	store  Store
	logger *zap.Logger
	random func() float64
	now    func() time.Time
}

// NewService creates a pricing service on top of a watch store.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		random: rand.Float64,
		now:    time.Now,
	}
}

// Track registers a price watch for a product.
func (s *Service) Track(ctx context.Context, productID, platform string, opts TrackOptions) (*Watch, error) {
	productID = strings.TrimSpace(productID)
	platform = strings.TrimSpace(platform)
	if productID == "" || platform == "" {
		return nil, ErrMissingProduct
	}
	if opts.TargetPrice != nil && *opts.TargetPrice < 0 {
		return nil, ErrInvalidTarget
	}

	w := &Watch{
		TrackingID:  "track-" + uuid.NewString(),
		ProductID:   productID,
		Platform:    platform,
		TargetPrice: opts.TargetPrice,
		NotifyEmail: opts.NotifyEmail,
		NotifyPhone: opts.NotifyPhone,
		Status:      StatusActive,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Save(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("Price tracking registered",
		zap.String("tracking_id", w.TrackingID),
		zap.String("product_id", productID),
		zap.String("platform", platform))
	return w, nil
}

// Watch returns a registration by tracking id.
func (s *Service) Watch(ctx context.Context, trackingID string) (*Watch, error) {
	return s.store.Get(ctx, trackingID)
}

func (s *Service) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.random()
}

// basePrice derives a stable base price from numeric product ids.
func basePrice(productID string) float64 {
	for _, r := range productID {
		if r < '0' || r > '9' {
			return 99.99
		}
	}
	n, err := strconv.ParseFloat(productID, 64)
	if err != nil {
		return 99.99
	}
	return math.Mod(n, 100) + 50
}

// History simulates a daily price history ending today.
// Every 7th day back is a weekly sale (-10%), every 30th a monthly one (-20%).
func (s *Service) History(productID, platform string, days int) (*History, error) {
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(platform) == "" {
		return nil, ErrMissingProduct
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, ErrInvalidDays
	}

	base := basePrice(productID)
	today := s.now()

	points := make([]PricePoint, days)
	for i := 0; i < days; i++ {
		price := base * (1 + s.uniform(-0.2, 0.2))
		if i%7 == 0 {
			price *= 0.9
		}
		if i%30 == 0 {
			price *= 0.8
		}
		// Fill from the end so the slice is oldest first
		points[days-1-i] = PricePoint{
			Date:     today.AddDate(0, 0, -i).Format("2006-01-02"),
			Price:    round2(price),
			Currency: currency,
			InStock:  s.random() > 0.1,
		}
	}

	h := &History{
		ProductID:    productID,
		Platform:     platform,
		Currency:     currency,
		PriceHistory: points,
		LowestPrice:  points[0].Price,
		HighestPrice: points[0].Price,
		CurrentPrice: points[days-1].Price,
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Price
		h.LowestPrice = math.Min(h.LowestPrice, p.Price)
		h.HighestPrice = math.Max(h.HighestPrice, p.Price)
	}
	h.AveragePrice = sum / float64(days)

	s.logger.Info("Generated price history",
		zap.String("product_id", productID),
		zap.String("platform", platform),
		zap.Int("days", days))
	return h, nil
}

// BuyingOptions simulates new, used and refurbished offers for a product.
func (s *Service) BuyingOptions(productName string) (*BuyingOptions, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrMissingName
	}

	p := s.uniform(80, 120)
	opts := &BuyingOptions{
		ProductName: productName,
		Options: Offers{
			New: Offer{
				Price:        round2(p),
				Availability: "In Stock",
				Shipping:     "Free",
				Warranty:     "1 Year Manufacturer Warranty",
				Sellers: []Seller{
					{Name: "Official Store", Rating: 4.8, Price: round2(p)},
					{Name: "MegaRetailer", Rating: 4.6, Price: round2(p * 1.05)},
					{Name: "ElectronicsPlus", Rating: 4.5, Price: round2(p * 1.02)},
				},
			},
			Used: Offer{
				Price:        round2(p * 0.7),
				Availability: "Limited Stock",
				Condition:    "Good",
				Shipping:     "$5.99",
				Warranty:     "30 Day Seller Warranty",
				Sellers: []Seller{
					{Name: "TechReseller", Rating: 4.3, Price: round2(p * 0.7), Condition: "Good"},
					{Name: "ValueDeals", Rating: 4.1, Price: round2(p * 0.65), Condition: "Acceptable"},
					{Name: "QualityUsed", Rating: 4.4, Price: round2(p * 0.75), Condition: "Very Good"},
				},
			},
			Refurbished: Offer{
				Price:        round2(p * 0.85),
				Availability: "In Stock",
				Condition:    "Certified Refurbished",
				Shipping:     "Free",
				Warranty:     "90 Day Warranty",
				Sellers: []Seller{
					{Name: "RefurbMaster", Rating: 4.5, Price: round2(p * 0.85)},
					{Name: "RenewTech", Rating: 4.4, Price: round2(p * 0.82)},
					{Name: "CertifiedRenew", Rating: 4.6, Price: round2(p * 0.88)},
				},
			},
		},
		BestValue:      "refurbished",
		Recommendation: "The refurbished option offers the best value with a 90-day warranty and 15% savings over new.",
	}

	s.logger.Info("Generated buying options", zap.String("product", productName))
	return opts, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
