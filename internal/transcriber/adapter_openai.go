package transcriber

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/sashabaranov/go-openai"
)

// OpenAIAdapter implements Transcriber for the OpenAI Whisper API
type OpenAIAdapter struct {
	client *openai.Client
	config Config
}

func NewOpenAIAdapter(client *openai.Client, config Config) *OpenAIAdapter {
	config.Model = modelOrDefault(config.Model, provider.ProviderOpenAI)
	return &OpenAIAdapter{
		client: client,
		config: config,
	}
}

func (a *OpenAIAdapter) Transcribe(ctx context.Context, path string) (string, error) {
	return transcribeFile(ctx, a.client, a.config, "openai-adapter", path)
}

// transcribeFile uploads path to an OpenAI-compatible transcription endpoint
func transcribeFile(ctx context.Context, client *openai.Client, config Config, name, path string) (string, error) {
	if err := ValidateAudioFile(path); err != nil {
		return "", err
	}

	req := openai.AudioRequest{
		Model:    config.Model,
		FilePath: path,
		Language: config.Language,
	}

	start := time.Now()
	resp, err := client.CreateTranscription(ctx, req)
	duration := time.Since(start)

	if err != nil {
		log.Printf("%s: API call failed after %v: %v", name, duration, err)
		return "", fmt.Errorf("%s transcription: %w", config.Provider, err)
	}

	log.Printf("%s: transcribed %s in %v (%d chars)", name, path, duration, len(resp.Text))
	return resp.Text, nil
}
