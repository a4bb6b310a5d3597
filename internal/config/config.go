package config

import (
	"fmt"
	"strings"
	"time"
)

// Provider names accepted in the provider key.
const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// Default model identifiers.
const (
	DefaultOpenRouterModel   = "openai/gpt-5.1-mini"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultGeminiModel       = "gemini-2.5-flash"
)

// Environment variables holding credentials.
const (
	EnvOpenRouterAPIKey = "OPENROUTER_API_KEY"
	EnvGeminiAPIKey     = "GEMINI_API_KEY"
)

type Config struct {
	Provider    string            `yaml:"provider"`
	OpenRouter  OpenRouterConfig  `yaml:"openrouter"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type OpenRouterConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	APIKey      string        `yaml:"-"`
}

type GeminiConfig struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	APIKey      string  `yaml:"-"`
}

type TranscriptConfig struct {
	Languages []string    `yaml:"languages"`
	YTDLP     YTDLPConfig `yaml:"ytdlp"`
}

type YTDLPConfig struct {
	Enabled    bool   `yaml:"enabled"`
	BinaryPath string `yaml:"binary_path"`
}

type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks the provider and fills defaults for everything left empty.
func (c *Config) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderOpenRouter
	}
	if c.Provider != ProviderOpenRouter && c.Provider != ProviderGemini {
		return fmt.Errorf("provider %q is not supported (want %s or %s)", c.Provider, ProviderOpenRouter, ProviderGemini)
	}

	if c.OpenRouter.BaseURL == "" {
		c.OpenRouter.BaseURL = DefaultOpenRouterBaseURL
	}
	if c.OpenRouter.Model == "" {
		c.OpenRouter.Model = DefaultOpenRouterModel
	}
	if c.OpenRouter.Temperature == 0 {
		c.OpenRouter.Temperature = 0.3
	}
	if c.OpenRouter.MaxTokens == 0 {
		c.OpenRouter.MaxTokens = 2000
	}
	if c.OpenRouter.Timeout == 0 {
		c.OpenRouter.Timeout = 120 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultGeminiModel
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.3
	}

	if len(c.Transcript.Languages) == 0 {
		c.Transcript.Languages = []string{"en", "en-US", "en-GB"}
	}
	if c.Transcript.YTDLP.BinaryPath == "" {
		c.Transcript.YTDLP.BinaryPath = "yt-dlp"
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/summaries"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// Model returns the model identifier of the selected provider.
func (c *Config) Model() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.Model
	}
	return c.OpenRouter.Model
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.APIKey
	}
	return c.OpenRouter.APIKey
}

// APIKeyEnv names the environment variable the selected provider reads.
func (c *Config) APIKeyEnv() string {
	if c.Provider == ProviderGemini {
		return EnvGeminiAPIKey
	}
	return EnvOpenRouterAPIKey
}

// RequireAPIKey fails when the selected provider has no credential.
func (c *Config) RequireAPIKey() error {
	if c.APIKey() == "" {
		return fmt.Errorf("%s environment variable not set", c.APIKeyEnv())
	}
	return nil
}
