// Package llm provides centralized LLM configuration and client abstractions.
// This package enables switching between providers without touching the
// extraction code that consumes them.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for structured extraction
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	// BaseURL overrides the provider endpoint (OpenAI only)
	BaseURL string
}

// DefaultConfig returns the default configuration (currently OpenAI)
func DefaultConfig() *Config {
	return DefaultOpenAIConfig()
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o-mini",
		Temperature: 0.1,
		MaxTokens:   4000,
		Timeout:     60 * time.Second,
		BaseURL:     "https://api.openai.com/v1",
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.1,
		MaxTokens:   4000,
		Timeout:     60 * time.Second,
	}
}

// normalize fills zero-valued fields with provider defaults
func (c *Config) normalize() {
	var def *Config
	if c.Provider == ProviderGemini {
		def = DefaultGeminiConfig()
	} else {
		c.Provider = ProviderOpenAI
		def = DefaultOpenAIConfig()
	}
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Temperature == 0 {
		c.Temperature = def.Temperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = def.MaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
}
