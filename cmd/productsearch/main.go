package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonardotrapani/gptconsole/internal/app"
	"github.com/leonardotrapani/gptconsole/internal/cache"
	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/interpreter"
	"github.com/leonardotrapani/gptconsole/internal/repl"
	"github.com/leonardotrapani/gptconsole/internal/search"
	"github.com/leonardotrapani/gptconsole/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		app.Report(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, catalogPath string

	cmd := &cobra.Command{
		Use:   "productsearch",
		Short: "Search the product catalog in natural language",
		Long: `Interactive product search.
Describe what you are looking for in plain language; the model turns it into
filters (category, price, rating, stock, keywords) that are applied to the
local catalog. Model settings are re-read from config.toml on every query.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), configPath, catalogPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "products JSON file (overrides search.catalog)")

	return cmd
}

func run(ctx context.Context, configPath, catalogPath string) error {
	sess, err := app.Start(ctx, app.Options{ConfigPath: configPath, Watch: true})
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := sess.Config()
	chat, _, err := sess.Chat(cfg.Search.Provider)
	if err != nil {
		return err
	}

	if catalogPath == "" {
		catalogPath = cfg.Search.Catalog
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}
	fmt.Println(tui.Success("Loaded %d products from %s", cat.Len(), catalogPath))

	interpretations := cache.Open(cfg.ToCacheConfig())
	defer interpretations.Close()

	service := search.NewService(interpreter.New(chat, cat, interpretations), cat)
	settings := func() interpreter.Options {
		return sess.Config().ToInterpreterOptions()
	}

	return repl.New(service, settings, os.Stdin, os.Stdout).Run(ctx)
}
