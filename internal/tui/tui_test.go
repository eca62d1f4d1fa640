package tui

import (
	"strings"
	"testing"

	"github.com/leonardotrapani/gptconsole/internal/config"
	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/leonardotrapani/gptconsole/internal/testutil"
)

func TestProviderOptions(t *testing.T) {
	options := providerOptions(provider.LLM, "groq")
	if len(options) != 2 {
		t.Fatalf("got %d options, want 2", len(options))
	}

	var groqLabel string
	for _, o := range options {
		if o.Value == "groq" {
			groqLabel = o.Key
		}
	}
	if groqLabel != "Groq (current)" {
		t.Errorf("groq label = %q", groqLabel)
	}
}

func TestModelOptions(t *testing.T) {
	options := modelOptions("openai", provider.Transcription, "whisper-1")
	if len(options) == 0 {
		t.Fatal("expected transcription models")
	}
	for _, o := range options {
		m, err := provider.FindModel("openai", o.Value)
		if err != nil || m.Type != provider.Transcription {
			t.Errorf("option %q is not an openai transcription model", o.Value)
		}
		if o.Value == "whisper-1" && !strings.HasSuffix(o.Key, "(current)") {
			t.Errorf("current model not marked: %q", o.Key)
		}
	}

	if got := modelOptions("acme", provider.LLM, ""); got != nil {
		t.Errorf("unknown provider should have no options, got %v", got)
	}
}

func TestPickModel(t *testing.T) {
	tests := []struct {
		provider string
		t        provider.ModelType
		current  string
		want     string
	}{
		{"openai", provider.LLM, "gpt-4", "gpt-4"},
		{"groq", provider.LLM, "gpt-4", "llama-3.3-70b-versatile"},
		{"openai", provider.LLM, "whisper-1", "gpt-4.1-mini"},
		{"groq", provider.Transcription, "", "whisper-large-v3-turbo"},
		{"acme", provider.LLM, "gpt-4", ""},
	}
	for _, tt := range tests {
		if got := pickModel(tt.provider, tt.t, tt.current); got != tt.want {
			t.Errorf("pickModel(%s, %v, %q) = %q, want %q", tt.provider, tt.t, tt.current, got, tt.want)
		}
	}
}

func TestLanguageOptions(t *testing.T) {
	options := languageOptions("es")
	if options[0].Value != "" {
		t.Errorf("auto-detect must come first, got %q", options[0].Value)
	}
	found := false
	for _, o := range options {
		if o.Value == "es" {
			found = true
			if o.Key != "Spanish (es) (current)" {
				t.Errorf("es label = %q", o.Key)
			}
		}
		if !provider.IsValidLanguageCode(o.Value) {
			t.Errorf("invalid language offered: %q", o.Value)
		}
	}
	if !found {
		t.Error("es not offered")
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) error
		input string
		ok    bool
	}{
		{"temperature zero", validateTemperature, "0", true},
		{"temperature decimal", validateTemperature, " 0.7 ", true},
		{"temperature too high", validateTemperature, "2.5", false},
		{"temperature negative", validateTemperature, "-0.1", false},
		{"temperature text", validateTemperature, "warm", false},
		{"max tokens", validatePositiveInt, "2000", true},
		{"max tokens zero", validatePositiveInt, "0", false},
		{"max tokens text", validatePositiveInt, "lots", false},
		{"duration", validateDuration, "24h", true},
		{"duration negative", validateDuration, "-1m", false},
		{"duration bare number", validateDuration, "10", false},
		{"not empty", validateNotEmpty("catalog"), "products.json", true},
		{"empty", validateNotEmpty("catalog"), "  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err == nil) != tt.ok {
				t.Errorf("validate(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			}
		})
	}
}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.1, 0.3, 0.7, 2} {
		if got := parseTemperature(formatTemperature(v)); got != v {
			t.Errorf("round trip %v -> %q -> %v", v, formatTemperature(v), got)
		}
	}
}

func TestApplyAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg := cloneConfig(testutil.TestConfig())
	dotEnv := make(map[string]string)

	applyAPIKey(cfg, dotEnv, "groq", "gsk_config", storeConfig)
	if cfg.Providers["groq"].APIKey != "gsk_config" {
		t.Errorf("config store: providers = %v", cfg.Providers)
	}

	applyAPIKey(cfg, dotEnv, "groq", "gsk_dotenv", storeDotEnv)
	if _, ok := cfg.Providers["groq"]; ok {
		t.Error("key stored in .env must be removed from config")
	}
	if dotEnv["GROQ_API_KEY"] != "gsk_dotenv" {
		t.Errorf("dotEnv = %v", dotEnv)
	}
	if got := cfg.ResolveAPIKey("groq"); got != "gsk_dotenv" {
		t.Errorf("ResolveAPIKey = %q", got)
	}
}

func TestCloneConfig(t *testing.T) {
	orig := testutil.TestConfig()
	clone := cloneConfig(orig)
	clone.Providers["groq"] = config.ProviderConfig{APIKey: "gsk_x"}
	clone.Search.Model = "gpt-4o"

	if _, ok := orig.Providers["groq"]; ok {
		t.Error("clone shares providers map with original")
	}
	if orig.Search.Model == "gpt-4o" {
		t.Error("clone shares search section with original")
	}
}

func TestSummaryLines(t *testing.T) {
	cfg := testutil.TestConfig()
	lines := SummaryLines(cfg, map[string]string{"OPENAI_API_KEY": "sk-x"})
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"openai/gpt-4.1-mini", "catalog products.json", "Auto-detect", "transcriptions", "will set OPENAI_API_KEY"} {
		if !strings.Contains(joined, want) {
			t.Errorf("summary missing %q:\n%s", want, joined)
		}
	}
}
