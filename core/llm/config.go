package llm

// OpenAIConfig holds credentials and model names for the OpenAI API.
type OpenAIConfig struct {
	// APIKey enables the OpenAI sources when set.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL overrides the API endpoint (proxies, compatible servers).
	BaseURL string `mapstructure:"base_url" default:""`
	// VisionModel is used for product detection.
	VisionModel string `mapstructure:"vision_model" default:"gpt-4o"`
	// TextModel is used to generate catalog listings.
	TextModel string `mapstructure:"text_model" default:"gpt-4o-mini"`
	// MaxTokens caps completion length.
	MaxTokens int64 `mapstructure:"max_tokens" default:"1500"`
}

// Enabled reports whether an API key is configured.
func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

// GeminiConfig holds credentials and model name for the Gemini API.
type GeminiConfig struct {
	// APIKey enables the Gemini vision source when set.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL overrides the API endpoint.
	BaseURL string `mapstructure:"base_url" default:""`
	// Model is the multimodal model used for detection.
	Model string `mapstructure:"model" default:"gemini-2.0-flash"`
}

// Enabled reports whether an API key is configured.
func (c GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}
