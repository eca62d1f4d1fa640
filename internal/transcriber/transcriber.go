package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/sashabaranov/go-openai"
)

// SupportedFormats are the audio file extensions accepted by the Whisper endpoints
var SupportedFormats = []string{"mp3", "mp4", "mpeg", "mpga", "m4a", "wav", "webm"}

// Transcriber turns an audio file into text
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Configuration for the transcriber
type Config struct {
	Provider string
	Model    string
	// Language is an ISO-639-1 code; empty means auto-detect
	Language string
}

// NewTranscriber creates the adapter for cfg.Provider over an existing client
func NewTranscriber(client *openai.Client, config Config) (Transcriber, error) {
	if client == nil {
		return nil, fmt.Errorf("nil openai client")
	}

	switch config.Provider {
	case provider.ProviderOpenAI:
		return NewOpenAIAdapter(client, config), nil
	case provider.ProviderGroq:
		return NewGroqTranscriptionAdapter(client, config), nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %s", config.Provider)
	}
}

// ValidateAudioFile checks that path exists, is a regular file and has a
// supported extension.
func ValidateAudioFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &InputError{Path: path, Err: ErrAudioNotFound}
		}
		return fmt.Errorf("stat audio file: %w", err)
	}
	if info.IsDir() {
		return &InputError{Path: path, Err: ErrAudioNotFound}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !slices.Contains(SupportedFormats, ext) {
		return &InputError{Path: path, Err: ErrUnsupportedFormat}
	}
	return nil
}

func modelOrDefault(model, providerName string) string {
	if model != "" {
		return model
	}
	if p := provider.GetProvider(providerName); p != nil {
		return p.DefaultModel(provider.Transcription)
	}
	return ""
}
