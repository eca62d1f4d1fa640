package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/leonardotrapani/gptconsole/internal/provider"
)

func markCurrent(label string, current bool) string {
	if current {
		return label + " (current)"
	}
	return label
}

// providerOptions lists registered providers that offer models of type t
func providerOptions(t provider.ModelType, current string) []huh.Option[string] {
	var options []huh.Option[string]
	for _, name := range provider.ListProviders() {
		p := provider.GetProvider(name)
		if len(provider.ModelsOfType(p, t)) == 0 {
			continue
		}
		options = append(options, huh.NewOption(markCurrent(provider.DisplayName(name), name == current), name))
	}
	return options
}

// modelOptions lists the provider's models of type t with their descriptions
func modelOptions(providerName string, t provider.ModelType, current string) []huh.Option[string] {
	p := provider.GetProvider(providerName)
	if p == nil {
		return nil
	}

	var options []huh.Option[string]
	for _, m := range provider.ModelsOfType(p, t) {
		label := m.ID
		if m.Description != "" {
			label = fmt.Sprintf("%s - %s", m.ID, m.Description)
		}
		options = append(options, huh.NewOption(markCurrent(label, m.ID == current), m.ID))
	}
	return options
}

// pickModel keeps current when the provider offers it, otherwise falls back
// to the provider default
func pickModel(providerName string, t provider.ModelType, current string) string {
	if m, err := provider.FindModel(providerName, current); err == nil && m.Type == t {
		return current
	}
	if p := provider.GetProvider(providerName); p != nil {
		return p.DefaultModel(t)
	}
	return ""
}

func languageOptions(current string) []huh.Option[string] {
	options := []huh.Option[string]{
		huh.NewOption(markCurrent("Auto-detect (recommended)", current == ""), ""),
	}
	for _, code := range provider.CommonLanguages {
		options = append(options, huh.NewOption(markCurrent(provider.LanguageLabel(code), code == current), code))
	}
	return options
}

func validateNotEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateTemperature(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v > 2 {
		return fmt.Errorf("must be between 0 and 2")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a duration like 30m or 24h")
	}
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func formatTemperature(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// parseTemperature expects input already accepted by validateTemperature
func parseTemperature(s string) float32 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(v)
}
