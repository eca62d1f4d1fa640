package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var (
	ErrNoChoices  = errors.New("no response choices")
	ErrNoToolCall = errors.New("model did not call the requested tool")
)

// Request is a single system+user chat completion
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Tool describes a function the model is forced to call
type Tool struct {
	Name        string
	Description string
	Parameters  jsonschema.Definition
}

// ToolRequest is a chat completion that must answer with a call to Tool
type ToolRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	Tool        Tool
}

// ToolCall is the raw function call returned by the model
type ToolCall struct {
	Name      string
	Arguments string
}

// ChatCompleter produces free-text completions
type ChatCompleter interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ToolCaller produces structured function-call arguments
type ToolCaller interface {
	CallTool(ctx context.Context, req ToolRequest) (ToolCall, error)
}

// Chat is implemented by the provider adapters
type Chat interface {
	ChatCompleter
	ToolCaller
}

// Config holds LLM adapter configuration
type Config struct {
	Provider string
	// Timeout bounds each call; zero means no extra deadline
	Timeout time.Duration
}

// NewClient builds the single authenticated client handle for a process.
// Groq is reached through its OpenAI-compatible endpoint.
func NewClient(providerName, apiKey string) (*openai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key required", providerName)
	}
	baseURL := provider.BaseURLForProvider(providerName)
	if baseURL == "" {
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerName)
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = baseURL
	return openai.NewClientWithConfig(clientConfig), nil
}

// NewAdapter creates a chat adapter for the provider over an existing client
func NewAdapter(client *openai.Client, cfg Config) (Chat, error) {
	if client == nil {
		return nil, fmt.Errorf("nil openai client")
	}
	switch cfg.Provider {
	case provider.ProviderOpenAI:
		return NewOpenAIAdapter(client, cfg), nil
	case provider.ProviderGroq:
		return NewGroqAdapter(client, cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
