// Package groq implements the Groq connector. Groq exposes an
// OpenAI-compatible API, so the connector is the OpenAI adapter stack pointed
// at Groq's endpoint with Groq's credentials.
package groq

import (
	ai "github.com/spetersoncode/llmconnect"
	"github.com/spetersoncode/llmconnect/internal/provider/openai"
)

// DefaultBaseURL is the Groq OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// New creates a Groq connector. The API key is resolved from cfg.APIKey or
// the GROQ_API_KEY environment variable.
func New(cfg ai.Config) (*openai.Connector, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return openai.NewForProvider(ai.ProviderGroq, "GROQ_API_KEY", cfg)
}
