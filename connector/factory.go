package connector

import (
	"sort"
	"strings"

	ai "github.com/spetersoncode/llmconnect"
	"github.com/spetersoncode/llmconnect/internal/provider/anthropic"
	"github.com/spetersoncode/llmconnect/internal/provider/groq"
	"github.com/spetersoncode/llmconnect/internal/provider/openai"
)

// builders maps each provider to its constructor. Construction is a lookup
// plus a fresh build: the factory caches nothing across calls.
var builders = map[ai.Provider]func(ai.Config) (ai.Connector, error){
	ai.ProviderOpenAI:    func(cfg ai.Config) (ai.Connector, error) { return openai.New(cfg) },
	ai.ProviderAnthropic: func(cfg ai.Config) (ai.Connector, error) { return anthropic.New(cfg) },
	ai.ProviderGroq:      func(cfg ai.Config) (ai.Connector, error) { return groq.New(cfg) },
}

// New resolves a provider name (case-insensitive) to a freshly constructed
// connector. An unknown name fails with ProviderNotSupportedError; a missing
// credential fails with AuthenticationError.
func New(name string, cfg ai.Config) (ai.Connector, error) {
	provider := ai.Provider(strings.ToLower(strings.TrimSpace(name)))
	build, ok := builders[provider]
	if !ok {
		return nil, &ai.ProviderNotSupportedError{Provider: name}
	}
	return build(cfg)
}

// Supported returns the sorted names of all registered providers.
func Supported() []string {
	names := make([]string, 0, len(builders))
	for provider := range builders {
		names = append(names, provider.String())
	}
	sort.Strings(names)
	return names
}
