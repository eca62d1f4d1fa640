package report

import (
	"fmt"
	"strings"
)

// Kind tells the analyzer how to read its input
type Kind int

const (
	// ServiceName is the name of a known service, e.g. "Spotify"
	ServiceName Kind = iota
	// Description is free text describing a service
	Description
)

func (k Kind) String() string {
	switch k {
	case ServiceName:
		return "service"
	case Description:
		return "description"
	default:
		return "unknown"
	}
}

// Title is the top-level heading of every report
const Title = "Service Analysis Report"

// Section is one fixed heading of the report and the guidance given for it
type Section struct {
	Heading  string
	Guidance string
}

// Sections are the report headings, in the order they must appear
var Sections = []Section{
	{"Brief History", "Provide founding year, key milestones, major developments, and evolution timeline."},
	{"Target Audience", "Identify primary user segments, demographics, and use cases."},
	{"Core Features", "List the top 2-4 key functionalities that define the service."},
	{"Unique Selling Points", "Highlight key differentiators that set this service apart from competitors."},
	{"Business Model", "Explain how the service generates revenue (subscription, freemium, ads, etc.)."},
	{"Tech Stack Insights", "Provide any available information about technologies, platforms, or technical architecture used."},
	{"Perceived Strengths", "List the main advantages, positive features, and standout capabilities."},
	{"Perceived Weaknesses", "Identify potential drawbacks, limitations, or areas for improvement."},
	{"Conclusion", "Provide a brief summary and overall assessment."},
}

const systemPrompt = "You are an expert business analyst with deep knowledge of digital services, products, " +
	"and market trends. Provide accurate, well-researched analysis."

const preamble = `You are an expert business analyst specializing in digital services and products.
Your task is to create a comprehensive, well-researched analysis report in markdown format.

`

const requirements = `
Requirements:
- Use proper markdown formatting with headers, bullet points, and emphasis
- Be factual and objective in your analysis
- Include specific details where available
- If information is limited, state this clearly
- Keep each section focused and informative
- Aim for comprehensive coverage while being concise
`

// BuildPrompt returns the user prompt asking for a report on input
func BuildPrompt(input string, kind Kind) string {
	var b strings.Builder
	b.WriteString(preamble)

	switch kind {
	case Description:
		fmt.Fprintf(&b, "Please analyze the following service/product description:\n\n\"%s\"\n\n", input)
		b.WriteString("Extract and analyze all available information from the provided text, and use your knowledge to fill in gaps where appropriate.\n")
	default:
		fmt.Fprintf(&b, "Please analyze the service/product: \"%s\"\n\n", input)
		b.WriteString("Use your knowledge about this service to provide accurate information. If you're not familiar with the service, clearly state what information is limited or unavailable.\n")
	}

	b.WriteString("\nIMPORTANT: Your response must be a well-formatted markdown report with exactly these sections in this order:\n\n")
	fmt.Fprintf(&b, "# %s\n\n", Title)
	for _, s := range Sections {
		fmt.Fprintf(&b, "## %s\n%s\n\n", s.Heading, s.Guidance)
	}
	b.WriteString(requirements)
	return b.String()
}
