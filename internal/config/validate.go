package config

import (
	"fmt"

	"github.com/leonardotrapani/gptconsole/internal/provider"
)

func (c *Config) Validate() error {
	if c.General.RequestTimeout < 0 {
		return fmt.Errorf("invalid general.request_timeout: %v", c.General.RequestTimeout)
	}

	if err := c.Search.validate(); err != nil {
		return err
	}
	if err := c.Speech.validate(); err != nil {
		return err
	}
	if err := c.Analyzer.validate(); err != nil {
		return err
	}

	if c.Cache.Enabled {
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("invalid cache.redis_addr: empty while cache is enabled")
		}
		if c.Cache.TTL < 0 {
			return fmt.Errorf("invalid cache.ttl: %v", c.Cache.TTL)
		}
	}

	for name := range c.Providers {
		if provider.GetProvider(name) == nil {
			return fmt.Errorf("invalid providers.%s: unknown provider (available: %v)", name, provider.ListProviders())
		}
	}

	return nil
}

func (s SearchConfig) validate() error {
	if err := validateModel("search", s.Provider, s.Model, provider.LLM); err != nil {
		return err
	}
	if s.Catalog == "" {
		return fmt.Errorf("invalid search.catalog: empty")
	}
	if s.Temperature < 0 || s.Temperature > 2 {
		return fmt.Errorf("invalid search.temperature: %v (must be between 0 and 2)", s.Temperature)
	}
	return nil
}

func (s SpeechConfig) validate() error {
	if err := validateModel("speech", s.Provider, s.TranscriptionModel, provider.Transcription); err != nil {
		return err
	}
	if err := validateModel("speech", s.Provider, s.SummaryModel, provider.LLM); err != nil {
		return err
	}
	if err := validateModel("speech", s.Provider, s.AnalyticsModel, provider.LLM); err != nil {
		return err
	}
	if !provider.IsValidLanguageCode(s.Language) {
		return fmt.Errorf("invalid speech.language: %s (use empty string for auto-detect or ISO-639-1 codes like 'en', 'es', 'fr')", s.Language)
	}
	if s.OutputDir == "" {
		return fmt.Errorf("invalid speech.output_dir: empty")
	}
	return nil
}

func (a AnalyzerConfig) validate() error {
	if err := validateModel("analyzer", a.Provider, a.Model, provider.LLM); err != nil {
		return err
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return fmt.Errorf("invalid analyzer.temperature: %v (must be between 0 and 2)", a.Temperature)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("invalid analyzer.max_tokens: %d", a.MaxTokens)
	}
	return nil
}

// validateModel checks that provider exists and that model, when set, is one
// of its models of the wanted type.
func validateModel(section, providerName, model string, want provider.ModelType) error {
	if providerName == "" {
		return fmt.Errorf("invalid %s.provider: empty", section)
	}
	if provider.GetProvider(providerName) == nil {
		return fmt.Errorf("invalid %s.provider: %s (available: %v)", section, providerName, provider.ListProviders())
	}
	if model == "" {
		return nil
	}

	m, err := provider.FindModel(providerName, model)
	if err != nil {
		return fmt.Errorf("invalid %s model %q for provider %s: %w", section, model, providerName, err)
	}
	if m.Type != want {
		return fmt.Errorf("invalid %s model %q: is a %s model, need %s", section, model, m.Type, want)
	}
	return nil
}
