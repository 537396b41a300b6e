// Package openai implements the OpenAI connector on the official OpenAI SDK.
// It also backs the groq package: Groq exposes an OpenAI-compatible API, so
// the same adapter stack serves both providers.
package openai

import (
	"fmt"
	"os"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/llmconnect"
)

// Connector wraps one OpenAI SDK client handle and hands out the capability
// adapters. Adapters are constructed lazily and cached, so repeated calls
// return the same instance.
type Connector struct {
	provider ai.Provider
	client   *openai.Client

	mu    sync.Mutex
	chat  ai.ChatCompletion
	batch ai.BatchProcess
	file  ai.FileAPI
}

// New creates an OpenAI connector. The API key is resolved from cfg.APIKey
// or the OPENAI_API_KEY environment variable.
func New(cfg ai.Config) (*Connector, error) {
	return NewForProvider(ai.ProviderOpenAI, "OPENAI_API_KEY", cfg)
}

// NewForProvider builds a connector against any OpenAI-compatible endpoint,
// resolving the key from cfg.APIKey or the given environment variable.
func NewForProvider(provider ai.Provider, apiKeyEnv string, cfg ai.Config) (*Connector, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	if apiKey == "" {
		return nil, &ai.AuthenticationError{
			Message: fmt.Sprintf("%s API key not found; set Config.APIKey or the %s environment variable", provider, apiKeyEnv),
		}
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Organization != "" {
		opts = append(opts, option.WithOrganization(cfg.Organization))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	client := openai.NewClient(opts...)
	return &Connector{provider: provider, client: &client}, nil
}

// Provider returns the provider this connector serves.
func (c *Connector) Provider() ai.Provider { return c.provider }

// Chat returns the chat completion adapter.
func (c *Connector) Chat() ai.ChatCompletion {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chat == nil {
		c.chat = &ChatService{client: c.client}
	}
	return c.chat
}

// Batch returns the batch processing adapter.
func (c *Connector) Batch() ai.BatchProcess {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.batch == nil {
		c.batch = &BatchService{client: c.client}
	}
	return c.batch
}

// File returns the file API adapter.
func (c *Connector) File() ai.FileAPI {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file == nil {
		c.file = &FileService{client: c.client}
	}
	return c.file
}

var _ ai.Connector = (*Connector)(nil)
