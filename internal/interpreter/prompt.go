package interpreter

import (
	"fmt"
	"strings"

	"github.com/leonardotrapani/gptconsole/internal/catalog"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// ToolName is the function the model is forced to call
const ToolName = "extract_product_filters"

// DescribeCatalog builds the compact schema description sent instead of the
// full catalog.
func DescribeCatalog(cat *catalog.Catalog) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "The catalog holds %d products.\n", cat.Len())
	if cats := cat.Categories(); len(cats) > 0 {
		fmt.Fprintf(&sb, "Categories (exact labels): %s\n", strings.Join(cats, ", "))
	}
	if cat.Len() > 0 {
		lo, hi := cat.PriceRange()
		fmt.Fprintf(&sb, "Prices range from $%s to $%s.\n", lo.StringFixed(2), hi.StringFixed(2))
		rlo, rhi := cat.RatingRange()
		fmt.Fprintf(&sb, "Ratings range from %.1f to %.1f (out of 5).\n", rlo, rhi)
	}
	sb.WriteString("Each product has: name, category, price, rating, in_stock.\n")

	return sb.String()
}

// BuildSystemPrompt generates the system prompt for query interpretation
func BuildSystemPrompt(schema string) string {
	prompt := "You are a product search assistant. Turn the user's request into structured filters " +
		"for a product catalog by calling " + ToolName + ".\n\n"
	prompt += "Catalog:\n" + schema + "\n"
	prompt += "Rules:\n"
	prompt += "- Only set a filter when the request asks for it\n"
	prompt += "- category must be one of the exact category labels\n"
	prompt += "- Prices are in US dollars; bounds are inclusive\n"
	prompt += "- Use keywords for words that should appear in the product name\n"
	prompt += "- Set in_stock_only only when the user wants available items\n"
	prompt += "- Always describe the filters you chose in criteria_used\n"
	return prompt
}

// BuildTool describes the extraction function. Parameters mirror
// filter.Constraints plus criteria_used.
func BuildTool(cat *catalog.Catalog) jsonschema.Definition {
	category := jsonschema.Definition{
		Type:        jsonschema.String,
		Description: "Exact product category",
	}
	if cats := cat.Categories(); len(cats) > 0 {
		category.Enum = cats
	}

	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"category": category,
			"max_price": {
				Type:        jsonschema.Number,
				Description: "Maximum price in dollars, inclusive",
			},
			"min_price": {
				Type:        jsonschema.Number,
				Description: "Minimum price in dollars, inclusive",
			},
			"min_rating": {
				Type:        jsonschema.Number,
				Description: "Minimum rating from 0 to 5, inclusive",
			},
			"in_stock_only": {
				Type:        jsonschema.Boolean,
				Description: "Only include products that are in stock",
			},
			"keywords": {
				Type:        jsonschema.Array,
				Description: "Words to match against product names; any one may match",
				Items:       &jsonschema.Definition{Type: jsonschema.String},
			},
			"criteria_used": {
				Type:        jsonschema.String,
				Description: "Short human-readable description of the filters applied",
			},
		},
		Required: []string{"criteria_used"},
	}
}
