package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/config"
	"github.com/leonardotrapani/gptconsole/internal/llm"
	"github.com/leonardotrapani/gptconsole/internal/logging"
	"github.com/leonardotrapani/gptconsole/internal/transcriber"
	"github.com/leonardotrapani/gptconsole/internal/tui"
	"github.com/sashabaranov/go-openai"
)

// Options controls how a tool starts
type Options struct {
	// ConfigPath overrides the user config file location
	ConfigPath string
	// DotEnvPath defaults to .env in the working directory
	DotEnvPath string
	// Watch reloads the config file when it changes
	Watch bool
}

// Session is the loaded environment of one tool invocation
type Session struct {
	configPath string
	config     *config.Config
	manager    *config.Manager
	closeLog   func() error
}

// Start loads .env, then the config file with environment overrides, and
// routes logging. A missing or invalid configuration is returned as an error.
func Start(ctx context.Context, opts Options) (*Session, error) {
	logging.Bootstrap()

	dotEnv := opts.DotEnvPath
	if dotEnv == "" {
		dotEnv = config.DotEnvFile
	}
	if err := config.LoadDotEnv(dotEnv); err != nil {
		return nil, err
	}

	path := opts.ConfigPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return nil, err
		}
	}

	s := &Session{configPath: path}
	if opts.Watch {
		manager, err := config.NewManagerForPath(path)
		if err != nil {
			return nil, err
		}
		s.manager = manager
		s.config = manager.GetConfig()
	} else {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		s.config = cfg
	}

	closeLog, err := logging.Setup(s.config.General)
	if err != nil {
		return nil, err
	}
	s.closeLog = closeLog

	if s.manager != nil {
		if err := s.manager.StartWatching(ctx); err != nil {
			log.Printf("App: config hot reload unavailable: %v", err)
		}
	}
	return s, nil
}

// Config returns the current configuration; with Watch it reflects the
// latest valid version of the file
func (s *Session) Config() *config.Config {
	if s.manager != nil {
		return s.manager.GetConfig()
	}
	return s.config
}

func (s *Session) ConfigPath() string {
	return s.configPath
}

// Client builds the single API client of the process for providerName
func (s *Session) Client(providerName string) (*openai.Client, error) {
	key, err := s.Config().APIKey(providerName)
	if err != nil {
		return nil, err
	}
	return llm.NewClient(providerName, key)
}

// Chat builds the client for providerName and the chat adapter over it
func (s *Session) Chat(providerName string) (llm.Chat, *openai.Client, error) {
	client, err := s.Client(providerName)
	if err != nil {
		return nil, nil, err
	}
	chat, err := llm.NewAdapter(client, s.Config().ToLLMConfig(providerName))
	if err != nil {
		return nil, nil, err
	}
	return chat, client, nil
}

func (s *Session) Close() error {
	if s.manager != nil {
		s.manager.Stop()
	}
	if s.closeLog != nil {
		return s.closeLog()
	}
	return nil
}

// Hint returns a one-line suggestion for a fatal error, or "" when there is
// nothing specific to say
func Hint(err error) string {
	var malformed *catalog.MalformedError
	switch {
	case errors.Is(err, config.ErrMissingAPIKey):
		return "Please check your .env file and API key."
	case errors.Is(err, catalog.ErrNotFound):
		return "Check search.catalog in your config or pass --catalog."
	case errors.As(err, &malformed):
		return "Fix the catalog file: it must be a JSON array of products with name, category, price, rating and in_stock."
	case errors.Is(err, transcriber.ErrAudioNotFound):
		return "Please check that the audio file path is correct."
	case errors.Is(err, transcriber.ErrUnsupportedFormat):
		return "Convert the recording to one of the supported formats."
	case errors.Is(err, context.Canceled):
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out; raise general.request_timeout or try again."
	default:
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.HTTPStatusCode == http.StatusUnauthorized {
				return "The API rejected the key. Please check your .env file and API key."
			}
			return fmt.Sprintf("The model API returned status %d. Please check your internet connection and try again.", apiErr.HTTPStatusCode)
		}
		return ""
	}
}

// Report prints a fatal error and its hint to w
func Report(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, tui.Warning("Interrupted."))
		return
	}
	fmt.Fprintln(w, tui.Error("Error: %v", err))
	if hint := Hint(err); hint != "" {
		fmt.Fprintln(w, tui.Hint("%s", hint))
	}
}
