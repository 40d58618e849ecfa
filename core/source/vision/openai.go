package vision

import (
	"context"
	"errors"
	"fmt"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// OpenAI detects products with an OpenAI multimodal chat model.
type OpenAI struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// NewOpenAI creates an OpenAI vision detector.
func NewOpenAI(cfg llm.OpenAIConfig) *OpenAI {
	return &OpenAI{
		client:    llm.NewOpenAIClient(cfg),
		model:     cfg.VisionModel,
		maxTokens: cfg.MaxTokens,
	}
}

// Name implements source.Detector.
func (o *OpenAI) Name() string {
	return "openai"
}

// Detect implements source.Detector.
func (o *OpenAI) Detect(ctx context.Context, img source.Image) ([]source.Detection, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(detectionPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: img.DataURL(),
				}),
			}),
		},
	}
	if o.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(o.maxTokens)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai vision request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai vision returned no choices")
	}

	return parseDetections(resp.Choices[0].Message.Content, o.Name())
}
