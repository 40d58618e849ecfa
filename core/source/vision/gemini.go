package vision

import (
	"context"
	"errors"
	"fmt"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"

	"google.golang.org/genai"
)

// Gemini localizes objects, brands and labels with a Gemini multimodal model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini vision detector.
func NewGemini(ctx context.Context, cfg llm.GeminiConfig) (*Gemini, error) {
	client, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: cfg.Model}, nil
}

// Name implements source.Detector.
func (g *Gemini) Name() string {
	return "gemini"
}

// Detect implements source.Detector.
func (g *Gemini) Detect(ctx context.Context, img source.Image) ([]source.Detection, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.MimeType),
			genai.NewPartFromText(scenePrompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini vision request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.New("gemini vision returned an empty answer")
	}

	return parseScene(text, g.Name())
}
