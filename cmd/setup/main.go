package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/app"
	"github.com/leonardotrapani/gptconsole/internal/config"
	"github.com/leonardotrapani/gptconsole/internal/doctor"
	"github.com/leonardotrapani/gptconsole/internal/logging"
	"github.com/leonardotrapani/gptconsole/internal/provider"
	"github.com/leonardotrapani/gptconsole/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		app.Report(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dotEnvPath string
	configure  bool
	models     bool
	modelType  string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Check the gptconsole environment and edit its configuration",
		Long: `Verify everything the gptconsole tools need:
- config.toml parses and is valid
- an API key is available for every configured provider (.env or config)
- the product catalog loads
- the speech output directory is writable
- Redis is reachable when the interpretation cache is enabled

With --configure an interactive wizard edits config.toml and .env first.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if opts.models {
				return listModels(cmd.OutOrStdout(), opts.modelType)
			}
			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is the user config directory)")
	cmd.Flags().StringVar(&opts.dotEnvPath, "env", config.DotEnvFile, ".env file holding API keys")
	cmd.Flags().BoolVar(&opts.configure, "configure", false, "run the interactive configuration wizard before checking")
	cmd.Flags().BoolVar(&opts.models, "models", false, "list the models each provider offers and exit")
	cmd.Flags().StringVar(&opts.modelType, "type", "", "with --models, filter by type: transcription, llm")
	cmd.MarkFlagsMutuallyExclusive("configure", "models")

	return cmd
}

func run(w io.Writer, opts options) error {
	logging.Bootstrap()

	if err := config.LoadDotEnv(opts.dotEnvPath); err != nil {
		return err
	}

	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	// no Validate here: reporting an invalid file is one of the checks
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	if opts.configure {
		saved, err := configure(w, cfg, path, opts.dotEnvPath)
		if err != nil {
			return err
		}
		if saved != nil {
			cfg = saved
		}
	}

	fmt.Fprintln(w, tui.StyleHeader.Render("gptconsole environment check"))
	fmt.Fprintln(w, tui.Rule("-", 50))

	checks := doctor.Run(cfg, doctor.Options{ConfigPath: path, DotEnvPath: opts.dotEnvPath})
	printChecks(w, checks)

	if doctor.Failed(checks) {
		return fmt.Errorf("environment check failed")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.Success("Ready. Try: productsearch, speechanalyzer <audio-file>, serviceanalyzer --service \"Spotify\""))
	return nil
}

// configure runs the wizard and persists its result. It returns nil when the
// user cancelled.
func configure(w io.Writer, cfg *config.Config, path, dotEnvPath string) (*config.Config, error) {
	result, err := tui.Run(cfg)
	if err != nil {
		return nil, fmt.Errorf("configuration wizard error: %w", err)
	}
	if result.Cancelled {
		fmt.Fprintln(w, tui.Warning("Configuration cancelled."))
		return nil, nil
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	for key, value := range result.DotEnv {
		if err := doctor.SetDotEnv(dotEnvPath, key, value); err != nil {
			return nil, err
		}
		fmt.Fprintln(w, tui.Success("Saved %s to %s", key, dotEnvPath))
	}

	if err := config.Save(result.Config, path); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintln(w, tui.Success("Configuration saved to %s", path))
	fmt.Fprintln(w)

	return result.Config, nil
}

func printChecks(w io.Writer, checks []doctor.Check) {
	for _, c := range checks {
		var mark string
		switch c.Level {
		case doctor.Pass:
			mark = tui.Success("[ok]  ")
		case doctor.Warn:
			mark = tui.Warning("[warn]")
		default:
			mark = tui.Error("[fail]")
		}

		line := fmt.Sprintf("%s %s", mark, tui.StyleLabel.Render(c.Name))
		if c.Detail != "" {
			line += ": " + c.Detail
		}
		fmt.Fprintln(w, line)
		if c.Level != doctor.Pass && c.Hint != "" {
			fmt.Fprintln(w, "       "+tui.Hint("%s", c.Hint))
		}
	}
}

func listModels(w io.Writer, typeFilter string) error {
	var filterType *provider.ModelType
	if typeFilter != "" {
		switch strings.ToLower(typeFilter) {
		case "transcription":
			t := provider.Transcription
			filterType = &t
		case "llm":
			t := provider.LLM
			filterType = &t
		default:
			return fmt.Errorf("invalid type: %s (use 'transcription' or 'llm')", typeFilter)
		}
	}

	for _, name := range provider.ListProviders() {
		p := provider.GetProvider(name)
		if p == nil {
			continue
		}

		models := p.Models()
		if filterType != nil {
			models = provider.ModelsOfType(p, *filterType)
		}
		if len(models) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", tui.StyleHeader.Render(provider.DisplayName(name)))
		for _, m := range models {
			fmt.Fprintln(w, modelLine(m, p))
		}
	}

	fmt.Fprintln(w)
	return nil
}

func modelLine(m provider.Model, p provider.Provider) string {
	var parts []string
	if m.Type == provider.LLM {
		parts = append(parts, "llm")
	}
	if m.SupportsTools {
		parts = append(parts, "tools")
	}
	if p.DefaultModel(m.Type) == m.ID {
		parts = append(parts, "default")
	}

	line := "  " + m.ID
	if m.Description != "" {
		line += " - " + m.Description
	}
	if len(parts) > 0 {
		line += fmt.Sprintf(" [%s]", strings.Join(parts, ", "))
	}
	return line
}
