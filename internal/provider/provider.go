package provider

import (
	"fmt"
	"sort"
)

// Provider defines the interface for a hosted model provider
type Provider interface {
	Name() string
	RequiresAPIKey() bool
	ValidateAPIKey(key string) bool
	Models() []Model
	DefaultModel(t ModelType) string
}

var registry = make(map[string]Provider)

func init() {
	Register(&OpenAIProvider{})
	Register(&GroqProvider{})
}

// Register adds a provider to the registry
func Register(p Provider) {
	registry[p.Name()] = p
}

// GetProvider returns a provider by name, or nil if not found
func GetProvider(name string) Provider {
	return registry[name]
}

// ListProviders returns all registered provider names, sorted
func ListProviders() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModelsOfType returns the provider's models of the given type
func ModelsOfType(p Provider, t ModelType) []Model {
	var out []Model
	for _, m := range p.Models() {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// FindModel looks up a model by ID within a single provider
func FindModel(providerName, modelID string) (Model, error) {
	p := GetProvider(providerName)
	if p == nil {
		return Model{}, fmt.Errorf("unknown provider: %s", providerName)
	}
	for _, m := range p.Models() {
		if m.ID == modelID {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("unknown model %q for provider %s", modelID, providerName)
}

// FindModelByID searches every provider for a model ID and returns the
// model together with the owning provider name
func FindModelByID(modelID string) (Model, string, error) {
	for _, name := range ListProviders() {
		for _, m := range registry[name].Models() {
			if m.ID == modelID {
				return m, name, nil
			}
		}
	}
	return Model{}, "", fmt.Errorf("model not found: %s", modelID)
}
