package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/llm"
)

const analyticsSystemPrompt = `You are an analytics expert. Analyze the provided transcript and return a JSON object with the following structure:
{
  "estimated_duration_minutes": <estimate how long this speech likely took in minutes>,
  "frequently_mentioned_topics": [
    {"topic": "Topic Name", "mentions": count},
    {"topic": "Another Topic", "mentions": count}
  ]
}

For topics, identify the main themes, subjects, or concepts discussed. Count how often each is mentioned (including synonyms and related terms). Return at least 3 topics, ordered by frequency. Respond with the JSON object only.`

// UnknownRate is written in place of a speaking rate that could not be computed
const UnknownRate = "Unable to calculate"

// Topic is a theme of the transcript with its mention count
type Topic struct {
	Topic    string `json:"topic"`
	Mentions int    `json:"mentions"`
}

// WPM is a speaking rate in words per minute that may be unknown
type WPM struct {
	Value int
	Known bool
}

func (w WPM) String() string {
	if !w.Known {
		return UnknownRate
	}
	return strconv.Itoa(w.Value)
}

func (w WPM) MarshalJSON() ([]byte, error) {
	if !w.Known {
		return json.Marshal(UnknownRate)
	}
	return json.Marshal(w.Value)
}

func (w *WPM) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*w = WPM{Value: n, Known: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("speaking rate must be a number or string: %w", err)
	}
	*w = WPM{}
	return nil
}

// Analytics is the metrics record saved as analysis_<stem>_<ts>.json
type Analytics struct {
	WordCount    int     `json:"word_count"`
	SpeakingRate WPM     `json:"speaking_speed_wpm"`
	Topics       []Topic `json:"frequently_mentioned_topics"`
	// Fallback is set when the model output could not be used
	Fallback bool `json:"-"`
}

// modelAnalysis is the JSON object requested from the model
type modelAnalysis struct {
	EstimatedDurationMinutes *float64 `json:"estimated_duration_minutes"`
	Topics                   []struct {
		Topic    string  `json:"topic"`
		Mentions float64 `json:"mentions"`
	} `json:"frequently_mentioned_topics"`
}

// WordCount counts whitespace-separated tokens
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SpeakingRate is round(words / minutes); 0 when minutes is not positive
func SpeakingRate(words int, minutes float64) int {
	if minutes <= 0 || math.IsNaN(minutes) {
		return 0
	}
	return int(math.Round(float64(words) / minutes))
}

// FallbackAnalytics is the record used when analysis fails
func FallbackAnalytics(words int) Analytics {
	return Analytics{
		WordCount:    words,
		SpeakingRate: WPM{},
		Topics:       []Topic{{Topic: "Analysis failed", Mentions: 0}},
		Fallback:     true,
	}
}

func (p *Pipeline) analyze(ctx context.Context, transcript string) Analytics {
	words := WordCount(transcript)

	raw, err := p.chat.Complete(ctx, llm.Request{
		Model:       p.config.AnalyticsModel,
		System:      analyticsSystemPrompt,
		User:        "Analyze this transcript:\n\n" + transcript,
		Temperature: analyticsTemperature,
		MaxTokens:   analyticsMaxTokens,
	})
	if err != nil {
		log.Printf("Pipeline: analytics request failed: %v", err)
		return FallbackAnalytics(words)
	}

	analytics, err := ParseAnalytics(raw, words)
	if err != nil {
		log.Printf("Pipeline: analytics response unusable: %v", err)
		return FallbackAnalytics(words)
	}
	return analytics
}

// ParseAnalytics builds the analytics record from the model's JSON answer.
// Surrounding prose or a markdown code fence around the object is tolerated.
func ParseAnalytics(raw string, words int) (Analytics, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return Analytics{}, fmt.Errorf("no JSON object in response")
	}

	var parsed modelAnalysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return Analytics{}, fmt.Errorf("failed to decode analytics: %w", err)
	}

	minutes := 1.0
	if parsed.EstimatedDurationMinutes != nil {
		minutes = *parsed.EstimatedDurationMinutes
	}

	topics := make([]Topic, 0, len(parsed.Topics))
	for _, t := range parsed.Topics {
		name := strings.TrimSpace(t.Topic)
		if name == "" {
			continue
		}
		topics = append(topics, Topic{Topic: name, Mentions: int(math.Round(t.Mentions))})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Mentions > topics[j].Mentions
	})

	return Analytics{
		WordCount:    words,
		SpeakingRate: WPM{Value: SpeakingRate(words, minutes), Known: true},
		Topics:       topics,
	}, nil
}
