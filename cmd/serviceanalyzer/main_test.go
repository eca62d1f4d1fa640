package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonardotrapani/gptconsole/internal/report"
)

func TestOptionsInput(t *testing.T) {
	input, kind := options{service: "Spotify"}.input()
	if input != "Spotify" || kind != report.ServiceName {
		t.Errorf("service input = %q, %v", input, kind)
	}

	input, kind = options{text: "A note-taking app"}.input()
	if input != "A note-taking app" || kind != report.Description {
		t.Errorf("text input = %q, %v", input, kind)
	}
}

func TestEmitToConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := emit(&buf, "# Service Analysis Report\n\nbody", ""); err != nil {
		t.Fatalf("emit() error = %v", err)
	}
	if !strings.Contains(buf.String(), "body") {
		t.Errorf("full report not printed:\n%s", buf.String())
	}
}

func TestEmitToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "slack.md")
	long := "# Service Analysis Report\n\n" + strings.Repeat("x", 600)

	var buf bytes.Buffer
	if err := emit(&buf, long, path); err != nil {
		t.Fatalf("emit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if string(data) != long {
		t.Error("saved report differs from the generated one")
	}

	out := buf.String()
	if !strings.Contains(out, path) {
		t.Errorf("saved path not printed:\n%s", out)
	}
	if strings.Contains(out, long) || !strings.Contains(out, "...") {
		t.Errorf("expected a truncated preview:\n%s", out)
	}
}

func TestRootCmdFlagRules(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"neither", []string{}},
		{"both", []string{"-s", "Spotify", "-t", "music app"}},
		{"positional", []string{"Spotify"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			if err := cmd.Execute(); err == nil {
				t.Error("expected a usage error")
			}
		})
	}
}
