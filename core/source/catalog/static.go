package catalog

import (
	"context"
	"fmt"
	"math"
	"strings"

	"shopping-agent/core/source"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Static generates deterministic placeholder listings.
// It backs every platform that has no live API behind it.
type Static struct{}

// Generate implements Generator.
func (Static) Generate(_ context.Context, platform string, q source.Query) ([]source.Product, error) {
	title := cases.Title(language.English).String(q.Text)
	slug := strings.ReplaceAll(q.Text, " ", "-")
	lower := strings.ToLower(platform)

	category := q.Category
	if category == "" {
		category = "General"
	}

	products := make([]source.Product, 0, q.Limit)
	for i := 0; i < q.Limit; i++ {
		price := 19.99 + float64(i)*10
		if r := q.PriceRange; r != nil {
			if price < r.Min {
				price = r.Min + float64(i)*5
			} else if price > r.Max {
				price = r.Max - float64(i)*5
			}
		}

		suffix := letter(i)
		products = append(products, source.Product{
			ID:           fmt.Sprintf("mock-%s-%d", lower, i),
			Name:         title + " " + suffix,
			Description:  fmt.Sprintf("This is a mock %s product for demonstration purposes.", q.Text),
			Price:        round2(price),
			Currency:     "USD",
			URL:          fmt.Sprintf("https://example.com/%s/%s-%d", lower, slug, i),
			ImageURL:     fmt.Sprintf("https://example.com/images/%s-%d.jpg", slug, i),
			Platform:     platform,
			Rating:       round2(4.0 + float64(i%10)/10),
			ReviewsCount: 10 + i*5,
			Relevance:    round2(0.9 - float64(i)*0.1),
			Category:     category,
			Brand:        "Brand " + suffix,
			Availability: "In Stock",
			Shipping: source.Shipping{
				Price:             5.99,
				IsFree:            false,
				EstimatedDelivery: "3-5 business days",
			},
		})
	}
	return products, nil
}

func letter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
