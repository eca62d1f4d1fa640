package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonardotrapani/gptconsole/internal/doctor"
	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/leonardotrapani/gptconsole/internal/testutil"
)

func setupWorkspace(t *testing.T, withCatalog bool) options {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("OPENAI_API_KEY", "sk-test-api-key-1234")

	if withCatalog {
		testutil.WriteCatalog(t, dir)
	}
	dotEnv := filepath.Join(dir, ".env")
	if err := os.WriteFile(dotEnv, []byte("OPENAI_API_KEY=sk-test-api-key-1234\n"), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	return options{
		configPath: filepath.Join(dir, "config.toml"),
		dotEnvPath: dotEnv,
	}
}

func TestRunHealthyEnvironment(t *testing.T) {
	opts := setupWorkspace(t, true)

	var buf bytes.Buffer
	if err := run(&buf, opts); err != nil {
		t.Fatalf("run() error = %v\n%s", err, buf.String())
	}

	out := buf.String()
	for _, want := range []string{"config file", "10 products in 3 categories", "output directory", "Ready."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[fail]") {
		t.Errorf("unexpected failed check:\n%s", out)
	}
}

func TestRunMissingCatalogFails(t *testing.T) {
	opts := setupWorkspace(t, false)

	var buf bytes.Buffer
	err := run(&buf, opts)
	if err == nil {
		t.Fatal("expected the environment check to fail")
	}
	if !strings.Contains(buf.String(), "[fail]") {
		t.Errorf("failed check not shown:\n%s", buf.String())
	}
}

func TestPrintChecks(t *testing.T) {
	var buf bytes.Buffer
	printChecks(&buf, []doctor.Check{
		{Name: "product catalog", Level: doctor.Pass, Detail: "10 products", Hint: "unused"},
		{Name: ".env file", Level: doctor.Warn, Detail: ".env not found", Hint: "create .env"},
	})

	out := buf.String()
	if !strings.Contains(out, "10 products") || !strings.Contains(out, ".env not found") {
		t.Errorf("details missing:\n%s", out)
	}
	if strings.Contains(out, "unused") {
		t.Error("hint printed for a passing check")
	}
	if !strings.Contains(out, "create .env") {
		t.Error("hint missing for a warning")
	}
}

func TestListModels(t *testing.T) {
	var buf bytes.Buffer
	if err := listModels(&buf, "transcription"); err != nil {
		t.Fatalf("listModels() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "whisper-1") || !strings.Contains(out, "whisper-large-v3-turbo") {
		t.Errorf("transcription models missing:\n%s", out)
	}
	if strings.Contains(out, "gpt-4o-mini -") {
		t.Errorf("llm model listed under transcription filter:\n%s", out)
	}

	if err := listModels(&buf, "video"); err == nil {
		t.Error("expected an error for an unknown type")
	}
}

func TestModelLine(t *testing.T) {
	p := provider.GetProvider(provider.ProviderOpenAI)
	m, err := provider.FindModel(provider.ProviderOpenAI, "gpt-4.1-mini")
	if err != nil {
		t.Fatalf("FindModel() error = %v", err)
	}

	line := modelLine(m, p)
	if !strings.HasPrefix(line, "  gpt-4.1-mini") || !strings.Contains(line, "[llm, tools, default]") {
		t.Errorf("modelLine() = %q", line)
	}
}
