package llm

import "github.com/sashabaranov/go-openai"

// GroqAdapter implements Chat using Groq's OpenAI-compatible API.
// The client must have been built with the Groq base URL (see NewClient).
type GroqAdapter struct {
	chatAdapter
}

// NewGroqAdapter creates a new Groq LLM adapter
func NewGroqAdapter(client *openai.Client, cfg Config) *GroqAdapter {
	return &GroqAdapter{chatAdapter{
		client:       client,
		config:       cfg,
		name:         "groq",
		defaultModel: "llama-3.3-70b-versatile",
	}}
}
