package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
	"go.uber.org/zap"
)

// LLM generates realistic listings with an OpenAI chat model.
// Answers that cannot be decoded fall back to Static listings.
type LLM struct {
	client    openai.Client
	model     string
	maxTokens int64
	logger    *zap.Logger
	fallback  Static
}

// NewLLM creates an OpenAI backed listing generator.
func NewLLM(cfg llm.OpenAIConfig, logger *zap.Logger) *LLM {
	return &LLM{
		client:    llm.NewOpenAIClient(cfg),
		model:     cfg.TextModel,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

// Generate implements Generator.
func (g *LLM) Generate(ctx context.Context, platform string, q source.Query) ([]source.Product, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(listingPrompt(platform, q)),
		},
	}
	if g.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(g.maxTokens)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai listing request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai listing request returned no choices")
	}

	products, err := llm.DecodeObjects[source.Product](resp.Choices[0].Message.Content)
	if err != nil {
		g.logger.Warn("Unparseable listing answer, using static listings",
			zap.String("platform", platform),
			zap.Error(err))
		return g.fallback.Generate(ctx, platform, q)
	}

	for i := range products {
		if products[i].Platform == "" {
			products[i].Platform = platform
		}
		if products[i].Currency == "" {
			products[i].Currency = "USD"
		}
		if products[i].ID == "" {
			products[i].ID = fmt.Sprintf("%s-%d", strings.ToLower(platform), i)
		}
	}
	return products, nil
}

func listingPrompt(platform string, q source.Query) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d realistic product search results for %q on %s.\n\n", q.Limit, q.Text, platform)
	if q.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", q.Category)
	}
	if q.PriceRange != nil {
		fmt.Fprintf(&b, "Price range: $%.2f - $%.2f\n", q.PriceRange.Min, q.PriceRange.Max)
	}
	fmt.Fprintf(&b, `
Format your response as a JSON array with objects containing:
{
    "id": "unique-id",
    "name": "Product Name",
    "description": "Brief product description",
    "price": XX.XX (numeric),
    "currency": "USD",
    "url": "https://example.com/product-url",
    "image_url": "https://example.com/image-url.jpg",
    "platform": "%s",
    "rating": X.X (between 1 and 5),
    "reviews_count": XXX,
    "relevance": 0.XX (between 0 and 1),
    "category": "Category",
    "brand": "Brand Name",
    "availability": "In Stock/Out of Stock/Pre-order",
    "shipping": {
        "price": X.XX,
        "is_free": true/false,
        "estimated_delivery": "X-Y business days"
    }
}

Make the results realistic and varied, with different prices, ratings, and features.`, platform)
	return b.String()
}
