package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/leonardotrapani/gptconsole/internal/llm"
	"github.com/leonardotrapani/gptconsole/internal/transcriber"
)

const (
	summaryTemperature   = 0.3
	summaryMaxTokens     = 1000
	analyticsTemperature = 0.1
	analyticsMaxTokens   = 800
)

const summarySystemPrompt = "You are a professional summarizer. Create a concise, well-structured summary " +
	"that captures the key points, main ideas, and important details from the given transcript. " +
	"Focus on preserving the core intent and main takeaways."

// Config holds pipeline configuration
type Config struct {
	// OutputDir receives the three artifacts; created if missing
	OutputDir      string
	SummaryModel   string
	AnalyticsModel string
}

// Files are the paths of the artifacts written by one run
type Files struct {
	Transcript string
	Summary    string
	Analytics  string
}

// Result of processing one audio file
type Result struct {
	Source     string
	Transcript string
	Summary    string
	// SummaryFailed is set when Summary is a placeholder
	SummaryFailed bool
	Analytics     Analytics
	Files         Files
}

// Pipeline runs transcribe, summarize and analyze over a single audio file.
// Only a transcription failure aborts a run.
type Pipeline struct {
	transcriber transcriber.Transcriber
	chat        llm.ChatCompleter
	config      Config
	progress    io.Writer
	now         func() time.Time
}

func New(tr transcriber.Transcriber, chat llm.ChatCompleter, config Config) *Pipeline {
	if config.OutputDir == "" {
		config.OutputDir = "transcriptions"
	}
	return &Pipeline{
		transcriber: tr,
		chat:        chat,
		config:      config,
		progress:    io.Discard,
		now:         time.Now,
	}
}

// SetProgress sets where human-readable step messages are written
func (p *Pipeline) SetProgress(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	p.progress = w
}

func (p *Pipeline) step(format string, args ...any) {
	fmt.Fprintf(p.progress, format+"\n", args...)
}

func (p *Pipeline) Process(ctx context.Context, audioPath string) (*Result, error) {
	if err := transcriber.ValidateAudioFile(audioPath); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(p.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	log.Printf("Pipeline: processing %s", audioPath)
	stamp := p.now()
	result := &Result{Source: audioPath}

	p.step("Transcribing audio file: %s", audioPath)
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		log.Printf("Pipeline: transcription failed: %v", err)
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	result.Transcript = transcript
	p.step("Transcription completed")

	if result.Files.Transcript, err = p.saveTranscript(transcript, audioPath, stamp); err != nil {
		return nil, err
	}
	p.step("Transcription saved to: %s", result.Files.Transcript)

	p.step("Generating summary...")
	result.Summary, result.SummaryFailed = p.summarize(ctx, transcript)
	if result.Files.Summary, err = p.saveSummary(result.Summary, audioPath, stamp); err != nil {
		return nil, err
	}
	p.step("Summary saved to: %s", result.Files.Summary)

	p.step("Extracting analytics...")
	result.Analytics = p.analyze(ctx, transcript)
	if result.Files.Analytics, err = p.saveAnalytics(result.Analytics, audioPath, stamp); err != nil {
		return nil, err
	}
	p.step("Analytics saved to: %s", result.Files.Analytics)

	log.Printf("Pipeline: finished %s (summary failed: %v, analytics fallback: %v)",
		audioPath, result.SummaryFailed, result.Analytics.Fallback)
	return result, nil
}

// summarize returns the model summary, or a labeled placeholder and true when
// the call fails
func (p *Pipeline) summarize(ctx context.Context, transcript string) (string, bool) {
	summary, err := p.chat.Complete(ctx, llm.Request{
		Model:       p.config.SummaryModel,
		System:      summarySystemPrompt,
		User:        "Please summarize the following transcript:\n\n" + transcript,
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err == nil && strings.TrimSpace(summary) == "" {
		err = fmt.Errorf("empty summary")
	}
	if err != nil {
		log.Printf("Pipeline: summary generation failed: %v", err)
		return fmt.Sprintf("Summary unavailable: %v", err), true
	}
	return summary, false
}
