package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/leonardotrapani/gptconsole/internal/cache"
	"github.com/leonardotrapani/gptconsole/internal/interpreter"
	"github.com/leonardotrapani/gptconsole/internal/llm"
	"github.com/leonardotrapani/gptconsole/internal/pipeline"
	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/leonardotrapani/gptconsole/internal/report"
	"github.com/leonardotrapani/gptconsole/internal/transcriber"
)

var ErrMissingAPIKey = errors.New("API key not configured")

// ResolveAPIKey returns the API key for a provider: providers.<name>.api_key
// first, then the provider's environment variable. The placeholder value from
// example .env files counts as unset.
func (c *Config) ResolveAPIKey(providerName string) string {
	key := ""
	if pc, ok := c.Providers[providerName]; ok && pc.APIKey != "" {
		key = pc.APIKey
	} else if envVar := provider.EnvVarForProvider(providerName); envVar != "" {
		key = os.Getenv(envVar)
	}

	if key == provider.PlaceholderAPIKey {
		return ""
	}
	return key
}

// APIKey is ResolveAPIKey that fails with ErrMissingAPIKey when no key is set
func (c *Config) APIKey(providerName string) (string, error) {
	key := c.ResolveAPIKey(providerName)
	if key == "" {
		return "", fmt.Errorf("%w for %s: set providers.%s.api_key in config or %s in the environment or .env file",
			ErrMissingAPIKey, providerName, providerName, provider.EnvVarForProvider(providerName))
	}
	return key, nil
}

func (c *Config) ToLLMConfig(providerName string) llm.Config {
	return llm.Config{
		Provider: providerName,
		Timeout:  c.General.RequestTimeout,
	}
}

func (c *Config) ToCacheConfig() cache.Config {
	return cache.Config{
		Enabled:   c.Cache.Enabled,
		RedisAddr: c.Cache.RedisAddr,
		Password:  c.Cache.Password,
		TTL:       c.Cache.TTL,
	}
}

// ToInterpreterOptions returns the per-query settings of the product search
func (c *Config) ToInterpreterOptions() interpreter.Options {
	return interpreter.Options{
		Model:       c.Search.Model,
		Temperature: c.Search.Temperature,
		CacheTTL:    c.Cache.TTL,
	}
}

func (c *Config) ToTranscriberConfig() transcriber.Config {
	return transcriber.Config{
		Provider: c.Speech.Provider,
		Model:    c.Speech.TranscriptionModel,
		Language: c.Speech.Language,
	}
}

func (c *Config) ToPipelineConfig() pipeline.Config {
	return pipeline.Config{
		OutputDir:      c.Speech.OutputDir,
		SummaryModel:   c.Speech.SummaryModel,
		AnalyticsModel: c.Speech.AnalyticsModel,
	}
}

func (c *Config) ToReportConfig() report.Config {
	return report.Config{
		Model:       c.Analyzer.Model,
		Temperature: c.Analyzer.Temperature,
		MaxTokens:   c.Analyzer.MaxTokens,
	}
}
