package renderer

import "github.com/etnz/budget"

// SummaryMarkdown renders the per-month summary of a budget to markdown.
func SummaryMarkdown(s *budget.Summary) string {
	partials := map[string]string{
		"summary_title":  "templates/summary_title.md",
		"summary_months": "templates/summary_months.md",
	}
	return renderTemplate("summary", "templates/summary.md", partials, s)
}
