package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/interpreter"
	"github.com/leonardotrapani/gptconsole/internal/present"
	"github.com/leonardotrapani/gptconsole/internal/search"
)

const (
	Prompt     = "What are you looking for? "
	EmptyInput = "Please enter a search query."
	Farewell   = "Thank you for using the Product Search Tool!"
	Interrupt  = "Goodbye!"
)

var exitTokens = map[string]bool{"quit": true, "exit": true, "q": true}

// Searcher runs one search turn
type Searcher interface {
	Search(ctx context.Context, query string, opts interpreter.Options) search.Result
}

// Settings returns the model settings for the next turn
type Settings func() interpreter.Options

// Loop is the interactive product search session
type Loop struct {
	searcher Searcher
	settings Settings
	in       io.Reader
	out      io.Writer
}

func New(searcher Searcher, settings Settings, in io.Reader, out io.Writer) *Loop {
	if settings == nil {
		settings = func() interpreter.Options { return interpreter.Options{} }
	}
	return &Loop{searcher: searcher, settings: settings, in: in, out: out}
}

func Banner() string {
	wide := strings.Repeat("=", 60)
	var b strings.Builder
	b.WriteString(wide + "\n")
	b.WriteString("      Welcome to the AI-Powered Product Search Tool\n")
	b.WriteString(wide + "\n")
	b.WriteString("\nDescribe what you're looking for in natural language.\n")
	b.WriteString("Examples:\n")
	b.WriteString("- 'I need a smartphone under $800'\n")
	b.WriteString("- 'Find me fitness equipment with great ratings'\n")
	b.WriteString("- 'Looking for kitchen appliances under $100 that are in stock'\n")
	b.WriteString("\nType 'quit' to exit.\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	return b.String()
}

// IsExit reports whether input ends the session
func IsExit(input string) bool {
	return exitTokens[strings.ToLower(strings.TrimSpace(input))]
}

// Run reads queries until an exit token, end of input or ctx is cancelled.
// Failed searches are reported and the loop keeps going.
func (l *Loop) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(l.in, done)

	fmt.Fprint(l.out, Banner())
	for {
		fmt.Fprint(l.out, "\n"+Prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(l.out, "\n\n"+Interrupt)
			return nil
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(l.out, "\n\n"+Interrupt)
				return nil
			}
			line = strings.TrimSpace(next)
		}

		if IsExit(line) {
			fmt.Fprintln(l.out, Farewell)
			return nil
		}
		if line == "" {
			fmt.Fprintln(l.out, EmptyInput)
			continue
		}

		l.turn(ctx, line)
		if ctx.Err() != nil {
			fmt.Fprintln(l.out, "\n"+Interrupt)
			return nil
		}
	}
}

func (l *Loop) turn(ctx context.Context, query string) {
	opts := l.settings()
	model := opts.Model
	if model == "" {
		model = "the default model"
	}

	fmt.Fprintf(l.out, "\nSearching for: '%s'\n", query)
	fmt.Fprintf(l.out, "Processing with %s...\n", model)

	res := l.searcher.Search(ctx, query, opts)
	if res.Status == search.Failed {
		log.Printf("REPL: query %q failed: %v", query, res.Err)
	}
	fmt.Fprint(l.out, present.Outcome(res))
}

// readLines feeds input lines to a channel so reads can be raced against
// cancellation. The channel is closed at end of input. The reader stops
// sending once done is closed; a read already blocked on r returns only
// when r does.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Printf("REPL: input error: %v", err)
		}
	}()
	return lines
}
