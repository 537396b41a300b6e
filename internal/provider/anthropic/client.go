// Package anthropic implements the Anthropic connector on the official
// Anthropic SDK.
package anthropic

import (
	"fmt"
	"os"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/llmconnect"
)

// Connector wraps one Anthropic SDK client handle and hands out the
// capability adapters. Adapters are constructed lazily and cached, so
// repeated calls return the same instance.
type Connector struct {
	client *anthropic.Client

	mu    sync.Mutex
	chat  ai.ChatCompletion
	batch ai.BatchProcess
	file  ai.FileAPI
}

// New creates an Anthropic connector. The API key is resolved from cfg.APIKey
// or the ANTHROPIC_API_KEY environment variable.
func New(cfg ai.Config) (*Connector, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, &ai.AuthenticationError{
			Message: fmt.Sprintf("%s API key not found; set Config.APIKey or the ANTHROPIC_API_KEY environment variable", ai.ProviderAnthropic),
		}
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	client := anthropic.NewClient(opts...)
	return &Connector{client: &client}, nil
}

// Provider returns the provider this connector serves.
func (c *Connector) Provider() ai.Provider { return ai.ProviderAnthropic }

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
