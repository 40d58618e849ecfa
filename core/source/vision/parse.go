package vision

import (
	"shopping-agent/core/llm"
	"shopping-agent/core/source"
	"shopping-agent/core/utils"
)

// defaultConfidence is assigned when the model omits a confidence value.
const defaultConfidence = 0.7

const detectionPrompt = `Analyze this image and identify any products that could be purchased.
For each product, provide:
1. Product name
2. Brand (if visible)
3. Category (clothing, electronics, food, etc.)
4. Key features
5. Estimated price range

Format your response as a JSON array with objects containing:
{
    "name": "Product Name",
    "brand": "Brand Name",
    "category": "Category",
    "features": ["feature1", "feature2"],
    "estimated_price_range": "$XX - $YY",
    "confidence": 0.XX (between 0 and 1)
}

Only include products that you're reasonably confident about (confidence > 0.6).`

// modelProduct is the per-product object the prompt asks for.
// Models are loose with types, so scalar fields are decoded untyped.
type modelProduct struct {
	Name                any `json:"name"`
	Brand               any `json:"brand"`
	Category            any `json:"category"`
	Features            any `json:"features"`
	EstimatedPriceRange any `json:"estimated_price_range"`
	Confidence          any `json:"confidence"`
}

func parseDetections(content, sourceName string) ([]source.Detection, error) {
	items, err := llm.DecodeObjects[modelProduct](content)
	if err != nil {
		return nil, err
	}

	detections := make([]source.Detection, 0, len(items))
	for _, item := range items {
		name := utils.ToString(item.Name)
		if name == "" {
			name = "Unknown Product"
		}
		confidence, ok := utils.ToFloat(item.Confidence)
		if !ok {
			confidence = defaultConfidence
		}

		detections = append(detections, source.Detection{
			Name:        name,
			Confidence:  confidence,
			Type:        source.KindProduct,
			BoundingBox: []source.Vertex{},
			Attributes: map[string]any{
				"brand":                 utils.ToString(item.Brand),
				"category":              utils.ToString(item.Category),
				"features":              utils.ToStrings(item.Features),
				"estimated_price_range": utils.ToString(item.EstimatedPriceRange),
			},
			Source: sourceName,
		})
	}
	return detections, nil
}
