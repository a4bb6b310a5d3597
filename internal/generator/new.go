package generator

import (
	"fmt"

	"github.com/nguyentantai21042004/podsum/internal/config"
)

// New returns the Generator for cfg.Provider using apiKey as the credential.
func New(cfg *config.Config, apiKey string) (Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s environment variable not set", ErrMissingCredential, cfg.APIKeyEnv())
	}

	switch cfg.Provider {
	case config.ProviderOpenRouter:
		return NewOpenRouter(cfg.OpenRouter, apiKey), nil
	case config.ProviderGemini:
		return NewGemini(cfg.Gemini, apiKey), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
