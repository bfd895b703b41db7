// Package render presents analysis reports: themed terminal display plus
// text, Markdown, and JSON exports. Uncategorized sentences are excluded
// from display and text export; the JSON export carries the full result.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notesift/notesift/internal/model"
)

// Renderer renders reports with an explicit theme
type Renderer struct {
	theme         Theme
	includeFooter bool
}

// New creates a renderer for the given theme
func New(theme Theme, includeFooter bool) *Renderer {
	return &Renderer{theme: theme, includeFooter: includeFooter}
}

// RenderText writes the grouped, themed result to w
func (r *Renderer) RenderText(w io.Writer, report *model.Report) {
	t := r.theme

	fmt.Fprintf(w, "%s%s%s\n", t.Dim, report.Source, t.Reset)
	for _, category := range model.Categories() {
		sentences := report.Result.ByCategory(category)
		fmt.Fprintf(w, "\n%s%s (%d)%s\n", t.Heading, category.Title(), len(sentences), t.Reset)
		if len(sentences) == 0 {
			fmt.Fprintf(w, "  %snone found%s\n", t.Dim, t.Reset)
			continue
		}
		for _, s := range sentences {
			fmt.Fprintf(w, "  %s•%s %s\n", t.Bullet, t.Reset, s.Text)
		}
	}
}

// RenderSummary prints the one-line result summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("Analysis complete (%s): %d actions, %d decisions, %d questions\n",
		report.Method, report.Actions, report.Decisions, report.Questions)
}

// ExportText writes the plain-text report, grouped by category headings
func (r *Renderer) ExportText(report *model.Report, path string) error {
	var b strings.Builder

	b.WriteString("MEETING NOTES ANALYSIS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Generated on: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Source: %s\n", report.Source)
	fmt.Fprintf(&b, "Analysis method: %s\n\n", methodLabel(report))

	for _, category := range model.Categories() {
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(category.Title()))
		b.WriteString(strings.Repeat("-", 30) + "\n")
		sentences := report.Result.ByCategory(category)
		if len(sentences) == 0 {
			fmt.Fprintf(&b, "No %s found.\n", strings.ToLower(category.Title()))
		}
		for i, s := range sentences {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s.Text)
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "Total Action Items: %d\n", report.Actions)
	fmt.Fprintf(&b, "Total Decisions: %d\n", report.Decisions)
	fmt.Fprintf(&b, "Total Open Questions: %d\n", report.Questions)

	if r.includeFooter {
		b.WriteString("\n--\nGenerated by notesift\n")
	}

	return writeFile(path, []byte(b.String()))
}

// ExportMarkdown writes the report as Markdown
func (r *Renderer) ExportMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Meeting Notes Analysis: %s\n\n", report.Source)
	fmt.Fprintf(&b, "- Generated: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Method: %s\n\n", methodLabel(report))

	for _, category := range model.Categories() {
		fmt.Fprintf(&b, "## %s\n\n", category.Title())
		sentences := report.Result.ByCategory(category)
		if len(sentences) == 0 {
			b.WriteString("_None found._\n\n")
			continue
		}
		for _, s := range sentences {
			if category == model.CategoryActionItem {
				fmt.Fprintf(&b, "- [ ] %s\n", s.Text)
			} else {
				fmt.Fprintf(&b, "- %s\n", s.Text)
			}
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n_Generated by notesift._\n")
	}

	return writeFile(path, []byte(b.String()))
}

// ExportJSON writes the full report, Uncategorized sentences included
func (r *Renderer) ExportJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// methodLabel describes the classification method for report headers
func methodLabel(report *model.Report) string {
	if report.Model != "" {
		return fmt.Sprintf("%s (%s)", report.Method, report.Model)
	}
	if report.Method == "pattern" {
		return "pattern matching"
	}
	return report.Method
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
