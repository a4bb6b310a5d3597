package generator

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/podsum/internal/config"
)

const providerGemini = "gemini"

type geminiGenerator struct {
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

// NewGemini creates a Generator backed by the Gemini API.
func NewGemini(cfg config.GeminiConfig, apiKey string) Generator {
	return &geminiGenerator{
		apiKey:      apiKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (g *geminiGenerator) Model() string {
	return g.model
}

// Generate sends the transcript prompt to Gemini and returns the summary text.
func (g *geminiGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &APIError{Provider: providerGemini, Message: "create client: " + err.Error(), Err: err}
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt.User), g.contentConfig(prompt))
	if err != nil {
		return "", &APIError{Provider: providerGemini, Message: err.Error(), Err: err}
	}

	text := responseText(result)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// contentConfig leaves the output uncapped unless max_tokens is set. On 2.5
// models the cap also counts thinking tokens.
func (g *geminiGenerator) contentConfig(prompt Prompt) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	}
	if g.maxTokens > 0 {
		cfg.MaxOutputTokens = int32(g.maxTokens)
	}
	return cfg
}

// responseText concatenates the text parts of the first candidate.
func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
