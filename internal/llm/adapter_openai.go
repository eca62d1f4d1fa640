package llm

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/sashabaranov/go-openai"
)

// chatAdapter implements Chat over any OpenAI-compatible endpoint
type chatAdapter struct {
	client       *openai.Client
	config       Config
	name         string
	defaultModel string
}

// OpenAIAdapter implements Chat using OpenAI's chat completions API
type OpenAIAdapter struct {
	chatAdapter
}

// NewOpenAIAdapter creates a new OpenAI LLM adapter
func NewOpenAIAdapter(client *openai.Client, cfg Config) *OpenAIAdapter {
	return &OpenAIAdapter{chatAdapter{
		client:       client,
		config:       cfg,
		name:         "openai",
		defaultModel: "gpt-4.1-mini",
	}}
}

func (a *chatAdapter) model(requested string) string {
	if requested == "" {
		return a.defaultModel
	}
	return requested
}

func (a *chatAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.Timeout)
}

// temperature maps 0 to the smallest positive float: go-openai omits a zero
// temperature and the API would fall back to its default of 1
func temperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func (a *chatAdapter) Complete(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       a.model(req.Model),
		Messages:    buildMessages(req.System, req.User),
		Temperature: temperature(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(callCtx, chatReq)
	duration := time.Since(start)

	if err != nil {
		log.Printf("%s-llm-adapter: API call failed after %v: %v", a.name, duration, err)
		return "", fmt.Errorf("%s chat completion: %w", a.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s chat completion: %w", a.name, ErrNoChoices)
	}

	result := resp.Choices[0].Message.Content
	log.Printf("%s-llm-adapter: completed in %v (model %s, %d chars)", a.name, duration, chatReq.Model, len(result))
	return result, nil
}

func (a *chatAdapter) CallTool(ctx context.Context, req ToolRequest) (ToolCall, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       a.model(req.Model),
		Messages:    buildMessages(req.System, req.User),
		Temperature: temperature(req.Temperature),
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        req.Tool.Name,
				Description: req.Tool.Description,
				Parameters:  req.Tool.Parameters,
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: req.Tool.Name},
		},
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(callCtx, chatReq)
	duration := time.Since(start)

	if err != nil {
		log.Printf("%s-llm-adapter: tool call failed after %v: %v", a.name, duration, err)
		return ToolCall{}, fmt.Errorf("%s tool call: %w", a.name, err)
	}

	if len(resp.Choices) == 0 {
		return ToolCall{}, fmt.Errorf("%s tool call: %w", a.name, ErrNoChoices)
	}

	for _, tc := range resp.Choices[0].Message.ToolCalls {
		if tc.Function.Name == req.Tool.Name {
			log.Printf("%s-llm-adapter: %s called in %v", a.name, req.Tool.Name, duration)
			return ToolCall{Name: tc.Function.Name, Arguments: tc.Function.Arguments}, nil
		}
	}

	return ToolCall{}, fmt.Errorf("%s tool call %s: %w", a.name, req.Tool.Name, ErrNoToolCall)
}
