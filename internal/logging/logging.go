package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leonardotrapani/gptconsole/internal/config"
)

// VerboseEnv forces diagnostics to stderr before the config is loaded
const VerboseEnv = "GPTCONSOLE_VERBOSE"

// Bootstrap routes the standard logger for the time before the config file
// has been read: stderr when VerboseEnv is true, otherwise nowhere.
func Bootstrap() {
	log.SetFlags(log.LstdFlags)
	if verbose, _ := strconv.ParseBool(os.Getenv(VerboseEnv)); verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// Setup routes the standard logger according to cfg. Console output of the
// tools stays clean unless verbose logging is on. The returned func closes
// the log file, if any.
func Setup(cfg config.GeneralConfig) (func() error, error) {
	var writers []io.Writer
	closer := func() error { return nil }

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return closer, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return closer, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f.Close
	}
	if cfg.Verbose {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	return closer, nil
}
