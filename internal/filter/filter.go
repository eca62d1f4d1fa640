package filter

import (
	"fmt"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/shopspring/decimal"
)

// Constraints is the optional-field description of what a query asks for.
// A nil pointer, a false InStockOnly or an empty Keywords slice imposes no
// constraint.
type Constraints struct {
	Category    *string          `json:"category,omitempty"`
	MaxPrice    *decimal.Decimal `json:"max_price,omitempty"`
	MinPrice    *decimal.Decimal `json:"min_price,omitempty"`
	MinRating   *float64         `json:"min_rating,omitempty"`
	InStockOnly bool             `json:"in_stock_only,omitempty"`
	Keywords    []string         `json:"keywords,omitempty"`
}

type pass func(catalog.Product) bool

// IsEmpty reports whether c narrows nothing
func (c Constraints) IsEmpty() bool {
	return len(c.passes()) == 0
}

// passes returns one predicate per present constraint, in evaluation order.
func (c Constraints) passes() []pass {
	var out []pass

	if c.Category != nil {
		category := *c.Category
		out = append(out, func(p catalog.Product) bool {
			return p.Category == category
		})
	}

	if c.MaxPrice != nil {
		bound := *c.MaxPrice
		out = append(out, func(p catalog.Product) bool {
			return p.Price.LessThanOrEqual(bound)
		})
	}

	if c.MinPrice != nil {
		bound := *c.MinPrice
		out = append(out, func(p catalog.Product) bool {
			return p.Price.GreaterThanOrEqual(bound)
		})
	}

	if c.MinRating != nil {
		bound := *c.MinRating
		out = append(out, func(p catalog.Product) bool {
			return p.Rating >= bound
		})
	}

	if c.InStockOnly {
		out = append(out, func(p catalog.Product) bool {
			return p.InStock
		})
	}

	if keywords := c.normalizedKeywords(); len(keywords) > 0 {
		out = append(out, func(p catalog.Product) bool {
			name := strings.ToLower(p.Name)
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					return true
				}
			}
			return false
		})
	}

	return out
}

func (c Constraints) normalizedKeywords() []string {
	var out []string
	for _, kw := range c.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// Apply returns the products satisfying every present constraint, in their
// original relative order. The input slice is never modified.
func Apply(products []catalog.Product, c Constraints) []catalog.Product {
	candidates := make([]catalog.Product, len(products))
	copy(candidates, products)

	for _, keep := range c.passes() {
		candidates = narrow(candidates, keep)
	}

	return candidates
}

func narrow(products []catalog.Product, keep pass) []catalog.Product {
	out := products[:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// String describes the constraints in plain words, e.g.
// "category Fitness, rating at least 4.5".
func (c Constraints) String() string {
	var parts []string

	if c.Category != nil {
		parts = append(parts, fmt.Sprintf("category %s", *c.Category))
	}
	switch {
	case c.MinPrice != nil && c.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("price between $%s and $%s", c.MinPrice.StringFixed(2), c.MaxPrice.StringFixed(2)))
	case c.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("price at most $%s", c.MaxPrice.StringFixed(2)))
	case c.MinPrice != nil:
		parts = append(parts, fmt.Sprintf("price at least $%s", c.MinPrice.StringFixed(2)))
	}
	if c.MinRating != nil {
		parts = append(parts, fmt.Sprintf("rating at least %.1f", *c.MinRating))
	}
	if c.InStockOnly {
		parts = append(parts, "in stock only")
	}
	if keywords := c.normalizedKeywords(); len(keywords) > 0 {
		parts = append(parts, fmt.Sprintf("name contains %s", strings.Join(quoteAll(keywords), " or ")))
	}

	if len(parts) == 0 {
		return "no constraints"
	}
	return strings.Join(parts, ", ")
}

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%q", w)
	}
	return out
}
