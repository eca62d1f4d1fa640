package present

import (
	"fmt"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/leonardotrapani/gptconsole/internal/search"
)

const NoMatches = "No products found matching your criteria."

var rule = strings.Repeat("-", 60)

// Products formats products one entry per record, 1-indexed, in the order
// given. It never sorts or deduplicates.
func Products(products []catalog.Product) string {
	if len(products) == 0 {
		return NoMatches + "\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Filtered Products (%d found):\n", len(products))
	sb.WriteString(rule + "\n")
	for i, p := range products {
		fmt.Fprintf(&sb, "%d. %s - $%s, Rating: %.1f, %s\n", i+1, p.Name, p.Price.StringFixed(2), p.Rating, stockLabel(p.InStock))
		fmt.Fprintf(&sb, "   Category: %s\n\n", p.Category)
	}
	return sb.String()
}

func stockLabel(inStock bool) string {
	if inStock {
		return "In Stock"
	}
	return "Out of Stock"
}

// Outcome renders a whole search turn: the criteria line, the products, and
// a diagnostic when the model could not be used.
func Outcome(res search.Result) string {
	var sb strings.Builder

	switch res.Status {
	case search.Failed:
		fmt.Fprintf(&sb, "Could not interpret the query: %v\n\n", res.Err)
	default:
		if res.Criteria != "" {
			fmt.Fprintf(&sb, "Criteria applied: %s\n", res.Criteria)
		}
		if res.Cached {
			sb.WriteString("(cached interpretation)\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(Products(res.Products))
	return sb.String()
}
