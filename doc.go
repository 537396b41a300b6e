// Package llmconnect provides a unified client abstraction over LLM provider
// APIs.
//
// The llmconnect library exposes one consistent surface for chat completion,
// bulk batch processing, and file management across OpenAI, Anthropic, and
// Groq, translating each provider's native request/response shapes and error
// taxonomy into a common model.
//
// # Core Interfaces
//
// A [Connector] binds one provider's SDK client to three capabilities:
//
//   - [ChatCompletion]: conversations, streaming, tool calling, multimodal content
//   - [BatchProcess]: create, poll, cancel, and decode bulk jobs
//   - [FileAPI]: upload, retrieve, download, delete, and list files
//
// Use the [github.com/spetersoncode/llmconnect/connector] package to resolve
// a provider name to a connector.
//
// # Basic Usage
//
// Send a simple chat message:
//
//	conn, err := connector.New("openai", llmconnect.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := conn.Chat().Invoke(ctx, llmconnect.UserText("What is the capital of France?"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// # Streaming Responses
//
// For real-time output, use Stream:
//
//	stream, err := conn.Chat().Stream(ctx, messages)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for chunk := range stream {
//	    if chunk.Err != nil {
//	        log.Fatal(chunk.Err)
//	    }
//	    fmt.Print(chunk.DeltaContent)
//	}
//
// Streamed tool calls arrive as raw [ToolCallDelta] values, one per network
// event; assemble them caller-side with a [ToolCallAccumulator]:
//
//	var acc llmconnect.ToolCallAccumulator
//	for chunk := range stream {
//	    acc.Add(chunk.DeltaToolCalls...)
//	}
//	calls, err := acc.ToolCalls()
//
// # Batch Processing
//
// Submit a JSONL payload of independent requests, each tagged with a caller
// chosen custom_id, then poll until the job settles:
//
//	job, err := conn.Batch().Create(ctx, llmconnect.BatchInput{
//	    File: llmconnect.FileFromPath("requests.jsonl"),
//	})
//	...
//	result, err := conn.Batch().Result(ctx, job.ID)
//	for _, rec := range result.Records {
//	    fmt.Println(rec.CustomID)
//	}
//
// # Errors
//
// Every adapter boundary translates the provider's native exception into this
// package's error taxonomy before it reaches caller code; native SDK error
// types never leak. Use [IsRetryable], [RetryAfterOf], and [StatusCodeOf] to
// drive retry decisions, or the opt-in
// [github.com/spetersoncode/llmconnect/retry] package. The adapters
// themselves never retry, rate-limit, or cap concurrency.
package llmconnect
