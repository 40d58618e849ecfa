// Package vision implements source.Detector on top of hosted multimodal
// models.
//
// OpenAI is asked for a list of purchasable products and yields "product"
// detections. Gemini is asked to localize the scene and yields "object"
// detections with bounding boxes, "brand" detections for visible logos and
// "label" detections for product-related image labels.
package vision
