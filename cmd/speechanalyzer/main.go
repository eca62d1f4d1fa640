package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/leonardotrapani/gptconsole/internal/app"
	"github.com/leonardotrapani/gptconsole/internal/pipeline"
	"github.com/leonardotrapani/gptconsole/internal/transcriber"
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
	var configPath, outputDir string

	cmd := &cobra.Command{
		Use:   "speechanalyzer <audio-file>",
		Short: "Speech-to-text with AI summary and analytics",
		Long: `Transcribe an audio file, then summarize the transcript and extract
word count, speaking speed and frequently mentioned topics.
The transcript, summary and analytics are written to the output directory.`,
		Example: `  speechanalyzer audio.wav
  speechanalyzer /path/to/audio.mp3
  speechanalyzer recording.m4a --output-dir results

Supported audio formats: ` + strings.Join(transcriber.SupportedFormats, ", "),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), configPath, outputDir, args[0])
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for generated files (overrides speech.output_dir)")

	return cmd
}

func run(ctx context.Context, configPath, outputDir, audioPath string) error {
	// a bad path is reported before any credential is needed
	if err := transcriber.ValidateAudioFile(audioPath); err != nil {
		return err
	}

	sess, err := app.Start(ctx, app.Options{ConfigPath: configPath})
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := sess.Config()
	chat, client, err := sess.Chat(cfg.Speech.Provider)
	if err != nil {
		return err
	}
	tr, err := transcriber.NewTranscriber(client, cfg.ToTranscriberConfig())
	if err != nil {
		return err
	}

	pipelineConfig := cfg.ToPipelineConfig()
	if outputDir != "" {
		pipelineConfig.OutputDir = outputDir
	}
	p := pipeline.New(tr, chat, pipelineConfig)
	p.SetProgress(os.Stdout)

	fmt.Printf("\nStarting processing for: %s\n", audioPath)
	fmt.Println(tui.Rule("=", 50))

	result, err := p.Process(ctx, audioPath)
	if err != nil {
		return err
	}

	displayResults(os.Stdout, result, pipelineConfig.OutputDir)
	return nil
}

func displayResults(w io.Writer, res *pipeline.Result, outputDir string) {
	fmt.Fprintln(w, "\n"+tui.Rule("=", 50))
	fmt.Fprintln(w, tui.StyleHeader.Render("PROCESSING COMPLETE!"))
	fmt.Fprintln(w, tui.Rule("=", 50))

	fmt.Fprintln(w, "\n"+tui.StyleHeader.Render("SUMMARY:"))
	fmt.Fprintln(w, tui.Rule("-", 30))
	if res.SummaryFailed {
		fmt.Fprintln(w, tui.Warning("%s", res.Summary))
	} else {
		fmt.Fprintln(w, res.Summary)
	}

	a := res.Analytics
	fmt.Fprintln(w, "\n"+tui.StyleHeader.Render("ANALYTICS:"))
	fmt.Fprintln(w, tui.Rule("-", 30))
	fmt.Fprintln(w, tui.Field("Word Count:", fmt.Sprint(a.WordCount)))
	fmt.Fprintln(w, tui.Field("Speaking Speed:", a.SpeakingRate.String()+" WPM"))
	if a.Fallback {
		fmt.Fprintln(w, tui.Warning("Analytics extraction failed; showing local word count only."))
	}
	fmt.Fprintln(w, "\n"+tui.StyleLabel.Render("Top Topics:"))
	for i, t := range a.Topics {
		fmt.Fprintf(w, "   %d. %s (%d mentions)\n", i+1, t.Topic, t.Mentions)
	}

	fmt.Fprintln(w, "\n"+tui.StyleHeader.Render("FILES CREATED:"))
	fmt.Fprintln(w, tui.Rule("-", 30))
	fmt.Fprintf(w, "   Transcript: %s\n", res.Files.Transcript)
	fmt.Fprintf(w, "   Summary: %s\n", res.Files.Summary)
	fmt.Fprintf(w, "   Analytics: %s\n", res.Files.Analytics)

	fmt.Fprintln(w, "\n"+tui.Success("All done! Check the '%s' folder for your files.", outputDir))
}
