package vision

import (
	"strings"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"
	"shopping-agent/core/utils"
)

const scenePrompt = `Analyze this image for things that could be purchased.
Return a single JSON object with three arrays:
{
    "objects": [{"name": "Shoe", "score": 0.XX, "box_2d": [ymin, xmin, ymax, xmax]}],
    "logos": [{"description": "Brand Name", "score": 0.XX, "box_2d": [ymin, xmin, ymax, xmax]}],
    "labels": [{"description": "Footwear", "score": 0.XX}]
}
"objects" are localized physical objects named with a generic noun (shoe, bag, laptop, chair).
"logos" are visible brand marks. "labels" describe the image as a whole.
Box coordinates are integers normalized to 0-1000. Scores are between 0 and 1.`

// boxScale is the coordinate range of box_2d values.
const boxScale = 1000.0

// productObjects lists the localized object names kept as products.
var productObjects = map[string]struct{}{
	"clothing": {}, "footwear": {}, "shoe": {}, "accessory": {}, "bag": {}, "watch": {},
	"electronics": {}, "phone": {}, "laptop": {}, "camera": {}, "headphones": {},
	"furniture": {}, "chair": {}, "table": {}, "sofa": {}, "bed": {},
	"food": {}, "fruit": {}, "vegetable": {}, "beverage": {},
}

// productLabelTerms selects the image labels that hint at a product.
var productLabelTerms = []string{
	"product", "brand", "clothing", "electronics", "food",
	"furniture", "accessory", "shoe", "watch", "bag",
}

type annotation struct {
	Name        any `json:"name"`
	Description any `json:"description"`
	Score       any `json:"score"`
	Box         any `json:"box_2d"`
}

func (a annotation) label() string {
	if name := strings.TrimSpace(utils.ToString(a.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(utils.ToString(a.Description))
}

func (a annotation) confidence() float64 {
	if f, ok := utils.ToFloat(a.Score); ok {
		return f
	}
	return defaultConfidence
}

type sceneAnswer struct {
	Objects []annotation `json:"objects"`
	Logos   []annotation `json:"logos"`
	Labels  []annotation `json:"labels"`
}

// parseScene turns a scene answer into detections: allowed objects first,
// then brands, then product-related labels.
func parseScene(content, sourceName string) ([]source.Detection, error) {
	answer, err := llm.DecodeObject[sceneAnswer](content)
	if err != nil {
		return nil, err
	}

	detections := make([]source.Detection, 0, len(answer.Objects)+len(answer.Logos)+len(answer.Labels))
	for _, obj := range answer.Objects {
		name := obj.label()
		if _, ok := productObjects[strings.ToLower(name)]; !ok {
			continue
		}
		detections = append(detections, source.Detection{
			Name:        name,
			Confidence:  obj.confidence(),
			Type:        source.KindObject,
			BoundingBox: boxVertices(obj.Box),
			Attributes:  map[string]any{},
			Source:      sourceName,
		})
	}

	for _, logo := range answer.Logos {
		name := logo.label()
		if name == "" {
			continue
		}
		detections = append(detections, source.Detection{
			Name:        name,
			Confidence:  logo.confidence(),
			Type:        source.KindBrand,
			BoundingBox: boxVertices(logo.Box),
			Attributes:  map[string]any{"brand": name},
			Source:      sourceName,
		})
	}

	for _, l := range answer.Labels {
		name := l.label()
		if !productLabel(name) {
			continue
		}
		detections = append(detections, source.Detection{
			Name:        name,
			Confidence:  l.confidence(),
			Type:        source.KindLabel,
			BoundingBox: []source.Vertex{},
			Attributes:  map[string]any{},
			Source:      sourceName,
		})
	}
	return detections, nil
}

func productLabel(name string) bool {
	lower := strings.ToLower(name)
	if lower == "" {
		return false
	}
	for _, term := range productLabelTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// boxVertices converts a [ymin, xmin, ymax, xmax] box into normalized
// corners, clockwise from top-left. Malformed boxes yield no vertices.
func boxVertices(raw any) []source.Vertex {
	values, ok := raw.([]any)
	if !ok || len(values) != 4 {
		return []source.Vertex{}
	}
	var c [4]float64
	for i, v := range values {
		f, ok := utils.ToFloat(v)
		if !ok {
			return []source.Vertex{}
		}
		c[i] = min(max(f/boxScale, 0), 1)
	}
	ymin, xmin, ymax, xmax := c[0], c[1], c[2], c[3]
	return []source.Vertex{
		{X: xmin, Y: ymin},
		{X: xmax, Y: ymin},
		{X: xmax, Y: ymax},
		{X: xmin, Y: ymax},
	}
}
