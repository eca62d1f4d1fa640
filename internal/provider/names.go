package provider

// Provider name constants for config and registry
const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
)

// Environment variable names for API keys
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGroqKey   = "GROQ_API_KEY"
)

// Base URLs of the OpenAI-compatible endpoints
const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	GroqBaseURL   = "https://api.groq.com/openai/v1"
)

// PlaceholderAPIKey is the value shipped in example .env files.
const PlaceholderAPIKey = "your_openai_api_key_here"

// EnvVarForProvider returns the environment variable name for a provider's API key
func EnvVarForProvider(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return EnvOpenAIKey
	case ProviderGroq:
		return EnvGroqKey
	default:
		return ""
	}
}

// BaseURLForProvider returns the API base URL, or "" for unknown providers
func BaseURLForProvider(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return OpenAIBaseURL
	case ProviderGroq:
		return GroqBaseURL
	default:
		return ""
	}
}

// DisplayName returns the human-readable provider name
func DisplayName(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderGroq:
		return "Groq"
	default:
		return provider
	}
}
