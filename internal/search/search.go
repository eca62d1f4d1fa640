package search

import (
	"context"
	"log"

	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/filter"
	"github.com/leonardotrapani/gptconsole/internal/interpreter"
)

type Status int

const (
	Matched Status = iota
	NoMatches
	Failed
)

func (s Status) String() string {
	switch s {
	case Matched:
		return "matched"
	case NoMatches:
		return "no-matches"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one search turn. A Failed result carries no
// products and a non-nil Err.
type Result struct {
	Status   Status
	Products []catalog.Product
	Criteria string
	Cached   bool
	Err      error
}

// Interpreter turns a query into constraints
type Interpreter interface {
	Interpret(ctx context.Context, query string, opts interpreter.Options) interpreter.Outcome
}

// Service runs interpretation followed by local filtering
type Service struct {
	interpreter Interpreter
	catalog     *catalog.Catalog
}

func NewService(interp Interpreter, cat *catalog.Catalog) *Service {
	return &Service{interpreter: interp, catalog: cat}
}

// Search never fails outright: a collaborator failure degrades to a Failed
// result with zero products.
func (s *Service) Search(ctx context.Context, query string, opts interpreter.Options) Result {
	out := s.interpreter.Interpret(ctx, query, opts)
	if out.Status == interpreter.Failed {
		log.Printf("Search: interpretation failed for %q: %v", query, out.Err)
		return Result{Status: Failed, Err: out.Err}
	}

	products := filter.Apply(s.catalog.Products(), out.Constraints)
	log.Printf("Search: %q matched %d of %d products", query, len(products), s.catalog.Len())

	status := Matched
	if len(products) == 0 {
		status = NoMatches
	}
	return Result{
		Status:   status,
		Products: products,
		Criteria: out.Criteria,
		Cached:   out.Cached,
	}
}
