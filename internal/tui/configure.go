package tui

import (
	"fmt"
	"maps"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/gptconsole/internal/config"
	"github.com/leonardotrapani/gptconsole/internal/doctor"
	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/muesli/termenv"
)

// ConfigureResult holds the configuration result from the wizard
type ConfigureResult struct {
	Config *config.Config
	// DotEnv holds variables the user chose to keep in .env rather than in
	// config.toml, keyed by variable name
	DotEnv    map[string]string
	Cancelled bool
}

// ConfigSection represents a configuration section
type ConfigSection string

const (
	SectionProviders   ConfigSection = "providers"
	SectionSearch      ConfigSection = "search"
	SectionSpeech      ConfigSection = "speech"
	SectionAnalyzer    ConfigSection = "analyzer"
	SectionCache       ConfigSection = "cache"
	SectionSaveExit    ConfigSection = "save_exit"
	SectionDiscardExit ConfigSection = "discard_exit"
)

const (
	storeConfig = "config"
	storeDotEnv = "dotenv"
)

// Run starts the configuration wizard on a copy of existing. The caller
// persists the result.
func Run(existing *config.Config) (*ConfigureResult, error) {
	if existing == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg := cloneConfig(existing)
	dotEnv := make(map[string]string)

	for {
		clearScreen()
		fmt.Println(Logo())
		fmt.Println()

		section, err := selectSection(cfg)
		if err != nil {
			return &ConfigureResult{Cancelled: true}, nil
		}

		switch section {
		case SectionSaveExit:
			confirmed, err := showSummary(cfg, dotEnv)
			if err != nil {
				return &ConfigureResult{Cancelled: true}, nil
			}
			if confirmed {
				return &ConfigureResult{Config: cfg, DotEnv: dotEnv}, nil
			}

		case SectionDiscardExit:
			return &ConfigureResult{Cancelled: true}, nil

		case SectionProviders:
			if err := editProviders(cfg, dotEnv); err != nil {
				continue
			}

		case SectionSearch:
			if err := editSearch(cfg); err != nil {
				continue
			}

		case SectionSpeech:
			if err := editSpeech(cfg); err != nil {
				continue
			}

		case SectionAnalyzer:
			if err := editAnalyzer(cfg); err != nil {
				continue
			}

		case SectionCache:
			if err := editCache(cfg); err != nil {
				continue
			}
		}
	}
}

func cloneConfig(c *config.Config) *config.Config {
	out := *c
	out.Providers = maps.Clone(c.Providers)
	if out.Providers == nil {
		out.Providers = make(map[string]config.ProviderConfig)
	}
	return &out
}

func sectionLabels(cfg *config.Config) []huh.Option[ConfigSection] {
	return []huh.Option[ConfigSection]{
		huh.NewOption(fmt.Sprintf("Providers (%s)", configuredSummary(cfg)), SectionProviders),
		huh.NewOption(fmt.Sprintf("Product search (%s/%s)", cfg.Search.Provider, cfg.Search.Model), SectionSearch),
		huh.NewOption(fmt.Sprintf("Speech analyzer (%s/%s)", cfg.Speech.Provider, cfg.Speech.TranscriptionModel), SectionSpeech),
		huh.NewOption(fmt.Sprintf("Service analyzer (%s/%s)", cfg.Analyzer.Provider, cfg.Analyzer.Model), SectionAnalyzer),
		huh.NewOption(fmt.Sprintf("Interpretation cache (%s)", enabledLabel(cfg.Cache.Enabled)), SectionCache),
		huh.NewOption("Save & Exit", SectionSaveExit),
		huh.NewOption("Discard & Exit", SectionDiscardExit),
	}
}

func selectSection(cfg *config.Config) (ConfigSection, error) {
	var selected ConfigSection

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ConfigSection]().
				Title("gptconsole configuration").
				Description("Choose a section to edit").
				Options(sectionLabels(cfg)...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func configuredProviders(cfg *config.Config) []string {
	var names []string
	for _, name := range provider.ListProviders() {
		if cfg.ResolveAPIKey(name) != "" {
			names = append(names, name)
		}
	}
	return names
}

func configuredSummary(cfg *config.Config) string {
	names := configuredProviders(cfg)
	if len(names) == 0 {
		return "no API key configured"
	}
	return strings.Join(names, ", ")
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// editProviders asks for an API key and where to keep it
func editProviders(cfg *config.Config, dotEnv map[string]string) error {
	var options []huh.Option[string]
	for _, name := range provider.ListProviders() {
		status := "not configured"
		if key := cfg.ResolveAPIKey(name); key != "" {
			status = doctor.MaskKey(key)
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", provider.DisplayName(name), status), name))
	}

	var selected string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Provider Settings").
				Description("Select a provider to configure its API key").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme()).Run(); err != nil {
		return err
	}

	p := provider.GetProvider(selected)
	displayName := provider.DisplayName(selected)
	envVar := provider.EnvVarForProvider(selected)

	var apiKey string
	store := storeDotEnv
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s API Key", displayName)).
				Description(fmt.Sprintf("Enter your %s API key", displayName)).
				EchoMode(huh.EchoModePassword).
				Value(&apiKey).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("API key is required")
					}
					if p != nil && !p.ValidateAPIKey(s) {
						return fmt.Errorf("invalid API key format for %s", displayName)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Store key in").
				Options(
					huh.NewOption(fmt.Sprintf(".env in the working directory (%s)", envVar), storeDotEnv),
					huh.NewOption("config.toml (providers section)", storeConfig),
				).
				Value(&store),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	applyAPIKey(cfg, dotEnv, selected, apiKey, store)
	return nil
}

// applyAPIKey records key for providerName in exactly one place
func applyAPIKey(cfg *config.Config, dotEnv map[string]string, providerName, key, store string) {
	if store == storeDotEnv {
		dotEnv[provider.EnvVarForProvider(providerName)] = key
		delete(cfg.Providers, providerName)
		// visible to ResolveAPIKey for the rest of the session
		os.Setenv(provider.EnvVarForProvider(providerName), key)
		return
	}
	cfg.Providers[providerName] = config.ProviderConfig{APIKey: key}
}

func editSearch(cfg *config.Config) error {
	s := cfg.Search
	if err := selectProvider("Product search provider", provider.LLM, &s.Provider); err != nil {
		return err
	}
	s.Model = pickModel(s.Provider, provider.LLM, s.Model)
	temperature := formatTemperature(s.Temperature)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Description("Used to turn queries into filters; must support tool calling").
				Options(modelOptions(s.Provider, provider.LLM, s.Model)...).
				Value(&s.Model),
			huh.NewInput().
				Title("Catalog").
				Description("Path to the products JSON file").
				Value(&s.Catalog).
				Validate(validateNotEmpty("catalog path")),
			huh.NewInput().
				Title("Temperature").
				Description("0 gives the most repeatable interpretations").
				Value(&temperature).
				Validate(validateTemperature),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	s.Temperature = parseTemperature(temperature)
	cfg.Search = s
	return nil
}

func editSpeech(cfg *config.Config) error {
	s := cfg.Speech
	if err := selectProvider("Speech provider", provider.Transcription, &s.Provider); err != nil {
		return err
	}
	s.TranscriptionModel = pickModel(s.Provider, provider.Transcription, s.TranscriptionModel)
	s.SummaryModel = pickModel(s.Provider, provider.LLM, s.SummaryModel)
	s.AnalyticsModel = pickModel(s.Provider, provider.LLM, s.AnalyticsModel)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transcription model").
				Options(modelOptions(s.Provider, provider.Transcription, s.TranscriptionModel)...).
				Value(&s.TranscriptionModel),
			huh.NewSelect[string]().
				Title("Language").
				Description("Spoken language of your recordings").
				Options(languageOptions(s.Language)...).
				Value(&s.Language),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Summary model").
				Options(modelOptions(s.Provider, provider.LLM, s.SummaryModel)...).
				Value(&s.SummaryModel),
			huh.NewSelect[string]().
				Title("Analytics model").
				Options(modelOptions(s.Provider, provider.LLM, s.AnalyticsModel)...).
				Value(&s.AnalyticsModel),
			huh.NewInput().
				Title("Output directory").
				Description("Transcripts, summaries and analytics are written here").
				Value(&s.OutputDir).
				Validate(validateNotEmpty("output directory")),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Speech = s
	return nil
}

func editAnalyzer(cfg *config.Config) error {
	a := cfg.Analyzer
	if err := selectProvider("Service analyzer provider", provider.LLM, &a.Provider); err != nil {
		return err
	}
	a.Model = pickModel(a.Provider, provider.LLM, a.Model)
	temperature := formatTemperature(a.Temperature)
	maxTokens := strconv.Itoa(a.MaxTokens)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Options(modelOptions(a.Provider, provider.LLM, a.Model)...).
				Value(&a.Model),
			huh.NewInput().
				Title("Temperature").
				Value(&temperature).
				Validate(validateTemperature),
			huh.NewInput().
				Title("Max tokens").
				Description("Upper bound on report length").
				Value(&maxTokens).
				Validate(validatePositiveInt),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	a.Temperature = parseTemperature(temperature)
	a.MaxTokens, _ = strconv.Atoi(strings.TrimSpace(maxTokens))
	cfg.Analyzer = a
	return nil
}

func editCache(cfg *config.Config) error {
	c := cfg.Cache
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Cache query interpretations in Redis?").
				Description("Repeated product searches skip the model call").
				Affirmative("Enable").
				Negative("Disable").
				Value(&c.Enabled),
		),
	).WithTheme(getTheme()).Run(); err != nil {
		return err
	}

	if !c.Enabled {
		cfg.Cache = c
		return nil
	}

	ttl := c.TTL.String()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Redis address").
				Value(&c.RedisAddr).
				Validate(validateNotEmpty("redis address")),
			huh.NewInput().
				Title("Redis password").
				Description("Leave empty when Redis has no auth").
				EchoMode(huh.EchoModePassword).
				Value(&c.Password),
			huh.NewInput().
				Title("Entry lifetime").
				Value(&ttl).
				Validate(validateDuration),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	c.TTL, _ = time.ParseDuration(strings.TrimSpace(ttl))
	cfg.Cache = c
	return nil
}

func selectProvider(title string, t provider.ModelType, value *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(providerOptions(t, *value)...).
				Value(value),
		),
	).WithTheme(getTheme()).Run()
}

// SummaryLines describes cfg for the confirmation screen
func SummaryLines(cfg *config.Config, dotEnv map[string]string) []string {
	lines := []string{
		Field("Providers:", configuredSummary(cfg)),
		Field("Product search:", fmt.Sprintf("%s/%s, catalog %s", cfg.Search.Provider, cfg.Search.Model, cfg.Search.Catalog)),
		Field("Speech:", fmt.Sprintf("%s/%s, %s", cfg.Speech.Provider, cfg.Speech.TranscriptionModel, provider.LanguageLabel(cfg.Speech.Language))),
		Field("Speech outputs:", cfg.Speech.OutputDir),
		Field("Service analyzer:", fmt.Sprintf("%s/%s, temperature %s", cfg.Analyzer.Provider, cfg.Analyzer.Model, formatTemperature(cfg.Analyzer.Temperature))),
		Field("Cache:", enabledLabel(cfg.Cache.Enabled)),
	}

	if len(dotEnv) > 0 {
		vars := make([]string, 0, len(dotEnv))
		for k := range dotEnv {
			vars = append(vars, k)
		}
		sort.Strings(vars)
		lines = append(lines, Field(".env:", "will set "+strings.Join(vars, ", ")))
	}
	return lines
}

func showSummary(cfg *config.Config, dotEnv map[string]string) (bool, error) {
	fmt.Println()
	fmt.Println(StyleHeader.Render("Configuration Summary"))
	fmt.Println()
	for _, line := range SummaryLines(cfg, dotEnv) {
		fmt.Println("  " + line)
	}
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		fmt.Println(Error("Configuration is invalid: %v", err))
		return false, nil
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
