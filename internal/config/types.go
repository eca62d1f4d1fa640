package config

import "time"

// Config is the shared configuration of all gptconsole tools.
// Every scalar can be overridden by a GPTCONSOLE_* environment variable.
type Config struct {
	General   GeneralConfig             `toml:"general" envPrefix:"GPTCONSOLE_"`
	Providers map[string]ProviderConfig `toml:"providers"`
	Search    SearchConfig              `toml:"search" envPrefix:"GPTCONSOLE_SEARCH_"`
	Speech    SpeechConfig              `toml:"speech" envPrefix:"GPTCONSOLE_SPEECH_"`
	Analyzer  AnalyzerConfig            `toml:"analyzer" envPrefix:"GPTCONSOLE_ANALYZER_"`
	Cache     CacheConfig               `toml:"cache" envPrefix:"GPTCONSOLE_CACHE_"`
}

// GeneralConfig holds global settings that apply across the application
type GeneralConfig struct {
	Verbose        bool          `toml:"verbose" env:"VERBOSE"`
	LogFile        string        `toml:"log_file" env:"LOG_FILE"`
	RequestTimeout time.Duration `toml:"request_timeout" env:"REQUEST_TIMEOUT"`
}

// ProviderConfig holds API key for a provider
type ProviderConfig struct {
	APIKey string `toml:"api_key"`
}

// SearchConfig configures the interactive product search
type SearchConfig struct {
	Provider    string  `toml:"provider" env:"PROVIDER"`
	Model       string  `toml:"model" env:"MODEL"`
	Catalog     string  `toml:"catalog" env:"CATALOG"`
	Temperature float32 `toml:"temperature" env:"TEMPERATURE"`
}

// SpeechConfig configures transcription and the transcript analysis calls
type SpeechConfig struct {
	Provider           string `toml:"provider" env:"PROVIDER"`
	TranscriptionModel string `toml:"transcription_model" env:"TRANSCRIPTION_MODEL"`
	Language           string `toml:"language" env:"LANGUAGE"`
	SummaryModel       string `toml:"summary_model" env:"SUMMARY_MODEL"`
	AnalyticsModel     string `toml:"analytics_model" env:"ANALYTICS_MODEL"`
	OutputDir          string `toml:"output_dir" env:"OUTPUT_DIR"`
}

// AnalyzerConfig configures the service report generator
type AnalyzerConfig struct {
	Provider    string  `toml:"provider" env:"PROVIDER"`
	Model       string  `toml:"model" env:"MODEL"`
	Temperature float32 `toml:"temperature" env:"TEMPERATURE"`
	MaxTokens   int     `toml:"max_tokens" env:"MAX_TOKENS"`
}

// CacheConfig configures the optional Redis interpretation cache
type CacheConfig struct {
	Enabled   bool          `toml:"enabled" env:"ENABLED"`
	RedisAddr string        `toml:"redis_addr" env:"REDIS_ADDR"`
	Password  string        `toml:"password" env:"PASSWORD"`
	TTL       time.Duration `toml:"ttl" env:"TTL"`
}
