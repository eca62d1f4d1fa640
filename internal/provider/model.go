package provider

// ModelType represents the type of a model
type ModelType int

const (
	Transcription ModelType = iota
	LLM
)

func (t ModelType) String() string {
	switch t {
	case Transcription:
		return "transcription"
	case LLM:
		return "llm"
	default:
		return "unknown"
	}
}

// Model represents a hosted model with the metadata the tools need
type Model struct {
	ID            string    // unique identifier (e.g., "whisper-1", "gpt-4o-mini")
	Name          string    // display name (e.g., "Whisper 1", "GPT-4o Mini")
	Description   string    // short description
	Type          ModelType // transcription or LLM
	SupportsTools bool      // accepts tool/function calling (needed by productsearch)
}
