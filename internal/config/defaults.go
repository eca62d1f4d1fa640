package config

import (
	"time"

	"github.com/leonardotrapani/gptconsole/internal/provider"
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Verbose:        false,
			LogFile:        "",
			RequestTimeout: 2 * time.Minute,
		},
		Providers: make(map[string]ProviderConfig),
		Search: SearchConfig{
			Provider:    provider.ProviderOpenAI,
			Model:       "gpt-4.1-mini",
			Catalog:     "products.json",
			Temperature: 0,
		},
		Speech: SpeechConfig{
			Provider:           provider.ProviderOpenAI,
			TranscriptionModel: "whisper-1",
			Language:           "",
			SummaryModel:       "gpt-4.1-mini",
			AnalyticsModel:     "gpt-4",
			OutputDir:          "transcriptions",
		},
		Analyzer: AnalyzerConfig{
			Provider:    provider.ProviderOpenAI,
			Model:       "gpt-4",
			Temperature: 0.7,
			MaxTokens:   2000,
		},
		Cache: CacheConfig{
			Enabled:   false,
			RedisAddr: "localhost:6379",
			TTL:       24 * time.Hour,
		},
	}
}
