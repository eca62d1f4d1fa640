package provider

import "strings"

// GroqProvider implements Provider for Groq's OpenAI-compatible API
type GroqProvider struct{}

func (p *GroqProvider) Name() string {
	return ProviderGroq
}

func (p *GroqProvider) RequiresAPIKey() bool {
	return true
}

func (p *GroqProvider) ValidateAPIKey(key string) bool {
	return strings.HasPrefix(key, "gsk_")
}

func (p *GroqProvider) Models() []Model {
	return []Model{
		{
			ID:          "whisper-large-v3",
			Name:        "Whisper Large v3",
			Description: "Most accurate Whisper on Groq",
			Type:        Transcription,
		},
		{
			ID:          "whisper-large-v3-turbo",
			Name:        "Whisper Large v3 Turbo",
			Description: "Faster Whisper on Groq",
			Type:        Transcription,
		},
		{
			ID:            "llama-3.3-70b-versatile",
			Name:          "Llama 3.3 70B",
			Description:   "General purpose, supports tool use",
			Type:          LLM,
			SupportsTools: true,
		},
		{
			ID:            "llama-3.1-8b-instant",
			Name:          "Llama 3.1 8B Instant",
			Description:   "Low latency",
			Type:          LLM,
			SupportsTools: true,
		},
	}
}

func (p *GroqProvider) DefaultModel(t ModelType) string {
	switch t {
	case Transcription:
		return "whisper-large-v3-turbo"
	case LLM:
		return "llama-3.3-70b-versatile"
	}
	return ""
}
