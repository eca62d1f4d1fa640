package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileHeader = `# gptconsole configuration
# Shared by productsearch, speechanalyzer and serviceanalyzer.
# productsearch re-reads [search] on every query, so edits apply without restart.
# Any value can be overridden with GPTCONSOLE_<SECTION>_<KEY>, e.g. GPTCONSOLE_SEARCH_MODEL.

`

// Save writes config to path as TOML, creating parent directories
func Save(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// api keys may be present
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("Config: saved configuration to %s", path)
	return nil
}
