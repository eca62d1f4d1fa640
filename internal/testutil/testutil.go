package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/config"
)

// SampleCatalogJSON is a small catalog covering several categories, both
// stock states and prices on either side of common bounds
const SampleCatalogJSON = `[
  {"name": "Wireless Headphones", "category": "Electronics", "price": 99.99, "rating": 4.5, "in_stock": true},
  {"name": "Smartphone", "category": "Electronics", "price": 799.99, "rating": 4.5, "in_stock": true},
  {"name": "Smart Watch", "category": "Electronics", "price": 199.99, "rating": 4.6, "in_stock": true},
  {"name": "Gaming Laptop", "category": "Electronics", "price": 1299.99, "rating": 4.7, "in_stock": false},
  {"name": "Yoga Mat", "category": "Fitness", "price": 29.99, "rating": 4.8, "in_stock": true},
  {"name": "Dumbbell Set", "category": "Fitness", "price": 49.99, "rating": 4.7, "in_stock": true},
  {"name": "Treadmill", "category": "Fitness", "price": 899.99, "rating": 4.3, "in_stock": false},
  {"name": "Blender", "category": "Kitchen Appliances", "price": 49.99, "rating": 4.2, "in_stock": true},
  {"name": "Air Fryer", "category": "Kitchen Appliances", "price": 89.99, "rating": 4.6, "in_stock": true},
  {"name": "Espresso Machine", "category": "Kitchen Appliances", "price": 149.99, "rating": 4.4, "in_stock": false}
]`

// WriteCatalog writes SampleCatalogJSON to dir/products.json and returns the path
func WriteCatalog(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "products.json")
	if err := os.WriteFile(path, []byte(SampleCatalogJSON), 0644); err != nil {
		t.Fatalf("Failed to write sample catalog: %v", err)
	}
	return path
}

// SampleCatalog parses SampleCatalogJSON
func SampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Parse(strings.NewReader(SampleCatalogJSON))
	if err != nil {
		t.Fatalf("Failed to parse sample catalog: %v", err)
	}
	return cat
}

// TestConfig returns a valid configuration with an OpenAI key for testing
func TestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Providers["openai"] = config.ProviderConfig{APIKey: "sk-test-api-key"}
	return cfg
}

// CreateTempConfigFile creates a temporary config file for testing
func CreateTempConfigFile(t *testing.T, configContent string) string {
	t.Helper()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// WaitForCondition waits for a condition to be true or times out
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("Condition not met within %v", timeout)
		default:
			if condition() {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}
