// Command example demonstrates basic llmconnect usage: a blocking chat
// request followed by a streaming one against the same connector.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	ai "github.com/spetersoncode/llmconnect"
	"github.com/spetersoncode/llmconnect/connector"
)

func main() {
	// Load .env if present; API keys come from the environment.
	godotenv.Load()

	provider := flag.String("provider", "openai", "provider to use: "+strings.Join(connector.Supported(), ", "))
	model := flag.String("model", "", "model to use (required)")
	prompt := flag.String("prompt", "Write a haiku about the sea.", "prompt to send")
	flag.Parse()

	if *model == "" {
		fmt.Fprintln(os.Stderr, "usage: example -provider openai -model gpt-4o-mini [-prompt ...]")
		os.Exit(2)
	}

	conn, err := connector.New(*provider, ai.Config{})
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Printf("== %s: blocking ==\n", conn.Provider())
	resp, err := conn.Chat().Invoke(ctx, ai.UserText(*prompt), ai.WithModel(*model))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(resp.Content)
	fmt.Printf("(finish: %s, tokens: %d)\n\n", resp.FinishReason, resp.Usage.TotalTokens)

	fmt.Printf("== %s: streaming ==\n", conn.Provider())
	stream, err := conn.Chat().Stream(ctx, ai.UserText(*prompt), ai.WithModel(*model))
	if err != nil {
		log.Fatal(err)
	}
	for chunk := range stream {
		if chunk.Err != nil {
			log.Fatal(chunk.Err)
		}
		fmt.Print(chunk.DeltaContent)
		if chunk.FinishReason != "" {
			fmt.Printf("\n(finish: %s)\n", chunk.FinishReason)
		}
	}
}
