package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/leonardotrapani/gptconsole/internal/cache"
	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/config"
	"github.com/leonardotrapani/gptconsole/internal/provider"
)

// Level is the outcome of a single check
type Level int

const (
	Pass Level = iota
	Warn
	Fail
)

func (l Level) String() string {
	switch l {
	case Pass:
		return "ok"
	case Warn:
		return "warning"
	case Fail:
		return "failed"
	default:
		return "unknown"
	}
}

// Check is the result of verifying one part of the environment
type Check struct {
	Name   string
	Level  Level
	Detail string
	// Hint tells the user how to fix a non-passing check
	Hint string
}

// CheckDotEnv reports whether path exists and defines a real key for envVar
func CheckDotEnv(path, envVar string) Check {
	c := Check{Name: ".env file"}

	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.Level = Warn
		c.Detail = fmt.Sprintf("%s not found", path)
		c.Hint = fmt.Sprintf("create %s containing %s=<your key>, or run setup --configure", path, envVar)
		return c
	}
	if err != nil {
		c.Level = Fail
		c.Detail = fmt.Sprintf("cannot parse %s: %v", path, err)
		return c
	}

	switch key := values[envVar]; key {
	case "", provider.PlaceholderAPIKey:
		c.Level = Warn
		c.Detail = fmt.Sprintf("%s exists but %s is not set", path, envVar)
		c.Hint = fmt.Sprintf("add your actual key as %s=... to %s", envVar, path)
	default:
		c.Detail = fmt.Sprintf("%s=%s", envVar, MaskKey(key))
	}
	return c
}

// CheckAPIKey reports whether a key for providerName can be resolved
func CheckAPIKey(cfg *config.Config, providerName string) Check {
	c := Check{Name: fmt.Sprintf("%s API key", providerName)}

	key, err := cfg.APIKey(providerName)
	if err != nil {
		c.Level = Fail
		c.Detail = err.Error()
		c.Hint = "the tools cannot start without a key"
		return c
	}

	c.Detail = MaskKey(key)
	if p := provider.GetProvider(providerName); p != nil && !p.ValidateAPIKey(key) {
		c.Level = Warn
		c.Detail += " (unexpected key format)"
		c.Hint = fmt.Sprintf("double-check the key for %s", providerName)
	}
	return c
}

// CheckCatalog loads the product catalog the way productsearch does
func CheckCatalog(path string) Check {
	c := Check{Name: "product catalog"}

	cat, err := catalog.Load(path)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.Level = Fail
		c.Detail = err.Error()
		c.Hint = "set search.catalog in config or GPTCONSOLE_SEARCH_CATALOG"
	case err != nil:
		c.Level = Fail
		c.Detail = err.Error()
		c.Hint = "fix the JSON file; every record needs name, category, price, rating and in_stock"
	default:
		c.Detail = fmt.Sprintf("%d products in %d categories from %s", cat.Len(), len(cat.Categories()), path)
	}
	return c
}

// CheckOutputDir creates dir if needed and verifies it is writable
func CheckOutputDir(dir string) Check {
	c := Check{Name: "output directory"}

	if err := os.MkdirAll(dir, 0755); err != nil {
		c.Level = Fail
		c.Detail = err.Error()
		return c
	}

	tmp, err := os.CreateTemp(dir, ".gptconsole-write-*")
	if err != nil {
		c.Level = Fail
		c.Detail = fmt.Sprintf("%s is not writable: %v", dir, err)
		return c
	}
	tmp.Close()
	os.Remove(tmp.Name())

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	c.Detail = abs + " ready"
	return c
}

// CheckConfigFile reports whether the config file exists and is valid
func CheckConfigFile(path string) Check {
	c := Check{Name: "config file"}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		c.Detail = fmt.Sprintf("%s not found, using defaults", path)
		return c
	}

	cfg, err := config.LoadFile(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		c.Level = Fail
		c.Detail = err.Error()
		c.Hint = "fix or delete the file, or rerun setup --configure"
		return c
	}
	c.Detail = path
	return c
}

// CheckCache verifies Redis is reachable when the interpretation cache is on
func CheckCache(cfg config.CacheConfig) Check {
	c := Check{Name: "interpretation cache"}

	if !cfg.Enabled {
		c.Detail = "disabled"
		return c
	}

	rc, err := cache.NewRedisCache(cfg.RedisAddr, cfg.Password)
	if err != nil {
		c.Level = Warn
		c.Detail = err.Error()
		c.Hint = "productsearch will run without caching"
		return c
	}
	rc.Close()
	c.Detail = "redis at " + cfg.RedisAddr
	return c
}

// Options selects what Run verifies
type Options struct {
	ConfigPath string
	DotEnvPath string
}

// Run performs every check for cfg. Providers are checked once each, in the
// order the tools use them.
func Run(cfg *config.Config, opts Options) []Check {
	checks := []Check{
		CheckConfigFile(opts.ConfigPath),
		CheckDotEnv(opts.DotEnvPath, provider.EnvVarForProvider(cfg.Search.Provider)),
	}

	seen := make(map[string]bool)
	for _, name := range []string{cfg.Search.Provider, cfg.Speech.Provider, cfg.Analyzer.Provider} {
		if seen[name] {
			continue
		}
		seen[name] = true
		checks = append(checks, CheckAPIKey(cfg, name))
	}

	return append(checks,
		CheckCatalog(cfg.Search.Catalog),
		CheckOutputDir(cfg.Speech.OutputDir),
		CheckCache(cfg.Cache),
	)
}

// Failed reports whether any check failed
func Failed(checks []Check) bool {
	for _, c := range checks {
		if c.Level == Fail {
			return true
		}
	}
	return false
}

// SetDotEnv writes key=value into the .env file at path, keeping any other
// variables already there.
func SetDotEnv(path, key, value string) error {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		values = make(map[string]string)
	} else if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	values[key] = value
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return os.Chmod(path, 0600)
}

// MaskKey hides all but the start and end of an API key. Keys too short to
// keep a hidden middle are masked entirely.
func MaskKey(key string) string {
	if len(key) <= 11 {
		return "***"
	}
	return key[:7] + "..." + key[len(key)-4:]
}
