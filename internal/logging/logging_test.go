package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonardotrapani/gptconsole/internal/config"
)

func restoreLog(t *testing.T) {
	t.Helper()
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })
}

func TestSetupDiscardsByDefault(t *testing.T) {
	restoreLog(t)

	closeLog, err := Setup(config.GeneralConfig{})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer closeLog()

	if log.Writer() != io.Discard {
		t.Errorf("log output = %T, want io.Discard", log.Writer())
	}
}

func TestSetupVerbose(t *testing.T) {
	restoreLog(t)

	closeLog, err := Setup(config.GeneralConfig{Verbose: true})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer closeLog()

	if log.Writer() != os.Stderr {
		t.Errorf("log output = %T, want os.Stderr", log.Writer())
	}
}

func TestSetupLogFile(t *testing.T) {
	restoreLog(t)

	path := filepath.Join(t.TempDir(), "logs", "gptconsole.log")
	closeLog, err := Setup(config.GeneralConfig{LogFile: path})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Printf("Search: test entry")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Search: test entry") {
		t.Errorf("log file missing entry, got %q", data)
	}
}

func TestSetupLogFileError(t *testing.T) {
	restoreLog(t)

	// a regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Setup(config.GeneralConfig{LogFile: filepath.Join(blocker, "x.log")}); err == nil {
		t.Error("expected error")
	}
}

func TestBootstrap(t *testing.T) {
	restoreLog(t)

	t.Setenv(VerboseEnv, "")
	Bootstrap()
	if log.Writer() != io.Discard {
		t.Errorf("log output = %T, want io.Discard", log.Writer())
	}

	t.Setenv(VerboseEnv, "1")
	Bootstrap()
	if log.Writer() != os.Stderr {
		t.Errorf("log output = %T, want os.Stderr", log.Writer())
	}
}
