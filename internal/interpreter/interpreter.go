package interpreter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/leonardotrapani/gptconsole/internal/cache"
	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/filter"
	"github.com/leonardotrapani/gptconsole/internal/llm"
)

type Status int

const (
	// Interpreted means the query produced at least one constraint
	Interpreted Status = iota
	// NoConstraints means the model answered but asked for nothing specific
	NoConstraints
	// Failed means the model call or its arguments were unusable
	Failed
)

func (s Status) String() string {
	switch s {
	case Interpreted:
		return "interpreted"
	case NoConstraints:
		return "no-constraints"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the typed result of interpreting one query.
// Err is set only when Status is Failed.
type Outcome struct {
	Status      Status
	Constraints filter.Constraints
	Criteria    string
	Cached      bool
	Err         error
}

// Options are read per query so model settings can change between turns
type Options struct {
	Model       string
	Temperature float32
	CacheTTL    time.Duration
}

type Interpreter struct {
	chat   llm.ToolCaller
	cache  cache.Cache
	system string
	tool   llm.Tool
	// scope fingerprints the prompt and tool schema so cached
	// interpretations are only reused for the same catalog
	scope string
}

// New builds an interpreter for a loaded catalog. A nil cache disables caching.
func New(chat llm.ToolCaller, cat *catalog.Catalog, c cache.Cache) *Interpreter {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	i := &Interpreter{
		chat:   chat,
		cache:  c,
		system: BuildSystemPrompt(DescribeCatalog(cat)),
		tool: llm.Tool{
			Name:        ToolName,
			Description: "Extract product search filters from a natural-language query",
			Parameters:  BuildTool(cat),
		},
	}
	i.scope = fingerprint(i.system, i.tool)
	return i
}

// fingerprint hashes everything the model sees besides the query
func fingerprint(system string, tool llm.Tool) string {
	schema, _ := json.Marshal(tool.Parameters)
	h := sha256.New()
	h.Write([]byte(system))
	h.Write([]byte{0})
	h.Write([]byte(tool.Name))
	h.Write([]byte{0})
	h.Write(schema)
	return hex.EncodeToString(h.Sum(nil))
}

func (i *Interpreter) cacheKey(model, query string) string {
	return cache.Key(i.scope, model, query)
}

type toolArguments struct {
	filter.Constraints
	CriteriaUsed string `json:"criteria_used"`
}

// Interpret asks the model for the constraint set behind query. It never
// returns an error directly: failures are reported as a Failed outcome.
func (i *Interpreter) Interpret(ctx context.Context, query string, opts Options) Outcome {
	key := i.cacheKey(opts.Model, query)

	if entry, err := i.cache.GetInterpretation(ctx, key); err != nil {
		log.Printf("Interpreter: cache lookup failed: %v", err)
	} else if entry != nil {
		log.Printf("Interpreter: cache hit for %q", query)
		out := outcomeFor(entry.Constraints, entry.Criteria)
		out.Cached = true
		return out
	}

	call, err := i.chat.CallTool(ctx, llm.ToolRequest{
		Model:       opts.Model,
		System:      i.system,
		User:        query,
		Temperature: opts.Temperature,
		Tool:        i.tool,
	})
	if err != nil {
		return Outcome{Status: Failed, Err: fmt.Errorf("interpret query: %w", err)}
	}

	var args toolArguments
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		return Outcome{Status: Failed, Err: fmt.Errorf("decode %s arguments: %w", ToolName, err)}
	}
	normalize(&args.Constraints)

	out := outcomeFor(args.Constraints, strings.TrimSpace(args.CriteriaUsed))
	log.Printf("Interpreter: %q -> %s (%s)", query, out.Status, out.Constraints)

	entry := &cache.Interpretation{Constraints: out.Constraints, Criteria: out.Criteria}
	if err := i.cache.SetInterpretation(ctx, key, entry, opts.CacheTTL); err != nil {
		log.Printf("Interpreter: cache store failed: %v", err)
	}

	return out
}

func outcomeFor(c filter.Constraints, criteria string) Outcome {
	if criteria == "" {
		criteria = c.String()
	}
	status := Interpreted
	if c.IsEmpty() {
		status = NoConstraints
	}
	return Outcome{Status: status, Constraints: c, Criteria: criteria}
}

// normalize drops values the model sends for fields it meant to leave unset
func normalize(c *filter.Constraints) {
	if c.Category != nil && strings.TrimSpace(*c.Category) == "" {
		c.Category = nil
	}
	var keywords []string
	for _, kw := range c.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	c.Keywords = keywords
}
