package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/leonardotrapani/gptconsole/internal/llm"
)

// DefaultFile is where Save writes when no path is given
const DefaultFile = "service_analysis_report.md"

// PreviewLength is how much of a saved report is echoed to the console
const PreviewLength = 500

var (
	ErrEmptyInput  = errors.New("nothing to analyze")
	ErrEmptyReport = errors.New("model returned an empty report")
)

// Config holds analyzer configuration
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Analyzer produces service analysis reports
type Analyzer struct {
	chat   llm.ChatCompleter
	config Config
}

func NewAnalyzer(chat llm.ChatCompleter, config Config) *Analyzer {
	return &Analyzer{chat: chat, config: config}
}

// Analyze returns the markdown report for input
func (a *Analyzer) Analyze(ctx context.Context, input string, kind Kind) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	log.Printf("Report: analyzing %s (%d chars)", kind, len(input))
	report, err := a.chat.Complete(ctx, llm.Request{
		Model:       a.config.Model,
		System:      systemPrompt,
		User:        BuildPrompt(input, kind),
		Temperature: a.config.Temperature,
		MaxTokens:   a.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("analysis failed: %w", err)
	}

	report = strings.TrimSpace(report)
	if report == "" {
		return "", ErrEmptyReport
	}

	if missing := MissingSections(report); len(missing) > 0 {
		log.Printf("Report: warning: report is missing sections: %s", strings.Join(missing, ", "))
	}
	return report, nil
}

// Save writes report to path, or DefaultFile when path is empty, and returns
// the path written
func Save(report, path string) (string, error) {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	log.Printf("Report: saved to %s", path)
	return path, nil
}

// Preview returns the first n characters of report followed by "..." when
// it is longer than n
func Preview(report string, n int) string {
	if utf8.RuneCountInString(report) <= n {
		return report
	}
	runes := []rune(report)
	return string(runes[:n]) + "..."
}

// MissingSections lists the section headings not present in report
func MissingSections(report string) []string {
	present := make(map[string]bool)
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		if heading, ok := strings.CutPrefix(line, "## "); ok {
			present[strings.ToLower(strings.TrimSpace(heading))] = true
		}
	}

	var missing []string
	for _, s := range Sections {
		if !present[strings.ToLower(s.Heading)] {
			missing = append(missing, s.Heading)
		}
	}
	return missing
}
