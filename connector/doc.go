// Package connector resolves provider names to llmconnect connectors.
//
// The factory is the single entry point for callers that select a provider
// at runtime:
//
//	conn, err := connector.New("anthropic", llmconnect.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := conn.Chat().Invoke(ctx, llmconnect.UserText("hello"))
//
// Every call constructs a fresh connector; the factory holds no state beyond
// the provider registry.
package connector
