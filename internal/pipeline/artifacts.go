package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	fileTimestamp   = "20060102_150405"
	headerTimestamp = "2006-01-02 15:04:05"
)

// ArtifactName returns <kind>_<stem>_<ts><ext> for the given source file
func ArtifactName(kind, source string, stamp time.Time, ext string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s_%s%s", kind, stem, stamp.Format(fileTimestamp), ext)
}

func markdownArtifact(title, section, source, body string, stamp time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s for %s\n\n", title, source)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", stamp.Format(headerTimestamp))
	fmt.Fprintf(&b, "## %s\n\n", section)
	b.WriteString(body)
	return b.String()
}

func (p *Pipeline) write(name string, data []byte) (string, error) {
	path := filepath.Join(p.config.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func (p *Pipeline) saveTranscript(transcript, source string, stamp time.Time) (string, error) {
	content := markdownArtifact("Transcription", "Transcript", source, transcript, stamp)
	return p.write(ArtifactName("transcription", source, stamp, ".md"), []byte(content))
}

func (p *Pipeline) saveSummary(summary, source string, stamp time.Time) (string, error) {
	content := markdownArtifact("Summary", "Summary", source, summary, stamp)
	return p.write(ArtifactName("summary", source, stamp, ".md"), []byte(content))
}

func (p *Pipeline) saveAnalytics(analytics Analytics, source string, stamp time.Time) (string, error) {
	data, err := json.MarshalIndent(analytics, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode analytics: %w", err)
	}
	return p.write(ArtifactName("analysis", source, stamp, ".json"), data)
}
