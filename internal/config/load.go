package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded from the working directory before anything else
const DotEnvFile = ".env"

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	appDir := filepath.Join(configDir, "gptconsole")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(appDir, "config.toml"), nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Printf("Config: loaded environment from %s", path)
	return nil
}

// LoadFile reads the config file at configPath, falling back to defaults
// when it does not exist, and applies environment overrides.
func LoadFile(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: no config file at %s, using defaults", configPath)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	} else {
		log.Printf("Config: loading configuration from %s", configPath)
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if config.Providers == nil {
		config.Providers = make(map[string]ProviderConfig)
	}

	if err := config.applyEnv(nil); err != nil {
		return nil, err
	}

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

// applyEnv overlays GPTCONSOLE_* variables. A nil environ reads the process
// environment.
func (c *Config) applyEnv(environ map[string]string) error {
	if err := env.ParseWithOptions(c, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}
	return nil
}
