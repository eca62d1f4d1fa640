package provider

import (
	"slices"
	"testing"
)

func TestProviderInterface(t *testing.T) {
	providers := []struct {
		name              string
		defaultTransModel string
		defaultLLMModel   string
		envVar            string
		baseURL           string
	}{
		{"openai", "whisper-1", "gpt-4.1-mini", "OPENAI_API_KEY", "https://api.openai.com/v1"},
		{"groq", "whisper-large-v3-turbo", "llama-3.3-70b-versatile", "GROQ_API_KEY", "https://api.groq.com/openai/v1"},
	}

	for _, tc := range providers {
		t.Run(tc.name, func(t *testing.T) {
			p := GetProvider(tc.name)
			if p == nil {
				t.Fatalf("GetProvider(%q) returned nil", tc.name)
			}

			if p.Name() != tc.name {
				t.Errorf("Name() = %q, want %q", p.Name(), tc.name)
			}

			if len(ModelsOfType(p, Transcription)) == 0 {
				t.Error("should have transcription models")
			}
			if len(ModelsOfType(p, LLM)) == 0 {
				t.Error("should have LLM models")
			}

			if p.DefaultModel(Transcription) != tc.defaultTransModel {
				t.Errorf("DefaultModel(Transcription) = %q, want %q", p.DefaultModel(Transcription), tc.defaultTransModel)
			}
			if p.DefaultModel(LLM) != tc.defaultLLMModel {
				t.Errorf("DefaultModel(LLM) = %q, want %q", p.DefaultModel(LLM), tc.defaultLLMModel)
			}

			if !p.RequiresAPIKey() {
				t.Error("RequiresAPIKey() should be true for all cloud providers")
			}

			if got := EnvVarForProvider(tc.name); got != tc.envVar {
				t.Errorf("EnvVarForProvider(%q) = %q, want %q", tc.name, got, tc.envVar)
			}
			if got := BaseURLForProvider(tc.name); got != tc.baseURL {
				t.Errorf("BaseURLForProvider(%q) = %q, want %q", tc.name, got, tc.baseURL)
			}
		})
	}
}

func TestDefaultModelsAreRegistered(t *testing.T) {
	for _, name := range ListProviders() {
		p := GetProvider(name)
		for _, typ := range []ModelType{Transcription, LLM} {
			id := p.DefaultModel(typ)
			m, err := FindModel(name, id)
			if err != nil {
				t.Errorf("%s default %s model %q not in registry: %v", name, typ, id, err)
				continue
			}
			if m.Type != typ {
				t.Errorf("%s model %q has type %s, want %s", name, id, m.Type, typ)
			}
		}
	}
}

func TestGetProviderNotFound(t *testing.T) {
	p := GetProvider("nonexistent")
	if p != nil {
		t.Errorf("GetProvider(nonexistent) should return nil, got %v", p)
	}
}

func TestListProviders(t *testing.T) {
	got := ListProviders()
	want := []string{"groq", "openai"}
	if !slices.Equal(got, want) {
		t.Errorf("ListProviders() = %v, want %v", got, want)
	}
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		provider string
		key      string
		want     bool
	}{
		{"openai", "sk-abc123", true},
		{"openai", "gsk_abc123", false},
		{"openai", PlaceholderAPIKey, false},
		{"groq", "gsk_abc123", true},
		{"groq", "sk-abc123", false},
	}

	for _, tc := range tests {
		t.Run(tc.provider+"/"+tc.key, func(t *testing.T) {
			if got := GetProvider(tc.provider).ValidateAPIKey(tc.key); got != tc.want {
				t.Errorf("ValidateAPIKey(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestFindModelByID(t *testing.T) {
	m, owner, err := FindModelByID("whisper-large-v3")
	if err != nil {
		t.Fatalf("FindModelByID() error = %v", err)
	}
	if owner != "groq" {
		t.Errorf("owner = %q, want groq", owner)
	}
	if m.Type != Transcription {
		t.Errorf("type = %s, want transcription", m.Type)
	}

	if _, _, err := FindModelByID("no-such-model"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestFindModelUnknownProvider(t *testing.T) {
	if _, err := FindModel("acme", "whisper-1"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		ProviderOpenAI: "OpenAI",
		ProviderGroq:   "Groq",
		"acme":         "acme",
	}
	for name, want := range tests {
		if got := DisplayName(name); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", name, got, want)
		}
	}
}
