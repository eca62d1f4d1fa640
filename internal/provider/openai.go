package provider

import "strings"

// OpenAIProvider implements Provider for OpenAI services
type OpenAIProvider struct{}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *OpenAIProvider) RequiresAPIKey() bool {
	return true
}

func (p *OpenAIProvider) ValidateAPIKey(key string) bool {
	return strings.HasPrefix(key, "sk-")
}

func (p *OpenAIProvider) Models() []Model {
	return []Model{
		// transcription models
		{
			ID:          "whisper-1",
			Name:        "Whisper 1",
			Description: "OpenAI's production speech-to-text model",
			Type:        Transcription,
		},
		{
			ID:          "gpt-4o-mini-transcribe",
			Name:        "GPT-4o Mini Transcribe",
			Description: "Cheaper transcription built on GPT-4o mini",
			Type:        Transcription,
		},
		// LLM models
		{
			ID:            "gpt-4.1-mini",
			Name:          "GPT-4.1 Mini",
			Description:   "Fast and affordable, good at tool calling",
			Type:          LLM,
			SupportsTools: true,
		},
		{
			ID:            "gpt-4o-mini",
			Name:          "GPT-4o Mini",
			Description:   "Fast and affordable GPT-4 variant",
			Type:          LLM,
			SupportsTools: true,
		},
		{
			ID:            "gpt-4o",
			Name:          "GPT-4o",
			Description:   "Most capable GPT-4 model",
			Type:          LLM,
			SupportsTools: true,
		},
		{
			ID:            "gpt-4",
			Name:          "GPT-4",
			Description:   "Original GPT-4",
			Type:          LLM,
			SupportsTools: true,
		},
	}
}

func (p *OpenAIProvider) DefaultModel(t ModelType) string {
	switch t {
	case Transcription:
		return "whisper-1"
	case LLM:
		return "gpt-4.1-mini"
	}
	return ""
}
