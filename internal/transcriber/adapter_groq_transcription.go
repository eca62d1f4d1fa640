package transcriber

import (
	"context"

	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/sashabaranov/go-openai"
)

// GroqTranscriptionAdapter implements Transcriber for Groq's Whisper API.
// The client must already point at Groq's OpenAI-compatible base URL.
type GroqTranscriptionAdapter struct {
	client *openai.Client
	config Config
}

func NewGroqTranscriptionAdapter(client *openai.Client, config Config) *GroqTranscriptionAdapter {
	config.Model = modelOrDefault(config.Model, provider.ProviderGroq)
	return &GroqTranscriptionAdapter{
		client: client,
		config: config,
	}
}

func (a *GroqTranscriptionAdapter) Transcribe(ctx context.Context, path string) (string, error) {
	return transcribeFile(ctx, a.client, a.config, "groq-transcription-adapter", path)
}
