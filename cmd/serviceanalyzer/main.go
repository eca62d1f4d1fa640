package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonardotrapani/gptconsole/internal/app"
	"github.com/leonardotrapani/gptconsole/internal/report"
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

type options struct {
	configPath string
	service    string
	text       string
	output     string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "serviceanalyzer",
		Short: "Analyze services or products and generate comprehensive reports",
		Long: `Generate a markdown report about a known service, or about a free-text
description of one: history, audience, features, business model, tech stack,
strengths, weaknesses and a conclusion.`,
		Example: `  serviceanalyzer --service "Spotify"
  serviceanalyzer --service "Notion"
  serviceanalyzer --text "Our platform helps teams collaborate..."
  serviceanalyzer --service "Slack" --output "slack_analysis.md"`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is the user config directory)")
	cmd.Flags().StringVarP(&opts.service, "service", "s", "", `name of a known service or product (e.g. "Spotify", "Notion")`)
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "raw service description text to analyze")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (optional, defaults to console output)")
	cmd.MarkFlagsMutuallyExclusive("service", "text")
	cmd.MarkFlagsOneRequired("service", "text")

	return cmd
}

// input returns the text to analyze and how to read it
func (o options) input() (string, report.Kind) {
	if o.service != "" {
		return o.service, report.ServiceName
	}
	return o.text, report.Description
}

func run(ctx context.Context, w io.Writer, opts options) error {
	sess, err := app.Start(ctx, app.Options{ConfigPath: opts.configPath})
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := sess.Config()
	chat, _, err := sess.Chat(cfg.Analyzer.Provider)
	if err != nil {
		return err
	}

	input, kind := opts.input()
	if kind == report.ServiceName {
		fmt.Fprintf(w, "Analyzing service: %s\n", input)
	} else {
		fmt.Fprintf(w, "Analyzing provided text (first 100 chars): %s\n", report.Preview(input, 100))
	}
	fmt.Fprintln(w, tui.Hint("Analyzing service... This may take a moment."))

	analysis, err := report.NewAnalyzer(chat, cfg.ToReportConfig()).Analyze(ctx, input, kind)
	if err != nil {
		return err
	}

	return emit(w, analysis, opts.output)
}

// emit saves the report and prints a preview when output is set, otherwise
// prints the whole report
func emit(w io.Writer, analysis, output string) error {
	if output == "" {
		fmt.Fprintf(w, "\n%s\n%s\n", tui.StyleHeader.Render("Analysis Report:"), tui.Rule("-", 50))
		fmt.Fprintln(w, analysis)
		return nil
	}

	saved, err := report.Save(analysis, output)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, tui.Success("Report saved to: %s", saved))
	fmt.Fprintf(w, "\n%s\n%s\n", tui.StyleHeader.Render("Report preview:"), tui.Rule("-", 50))
	fmt.Fprintln(w, report.Preview(analysis, report.PreviewLength))
	return nil
}
