// Package export renders a report document to a markdown file. The content
// comes from the same projection the interactive dashboard renders; the only
// additions are document metadata (generation time, short job id) and the
// static header/footer copy.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pharmascout/internal/report"
)

const (
	productName = "Pharma Scout Copilot"
	disclaimer  = "Generated by Pharma Scout AI. Data is for informational purposes only. Do not rely for clinical decisions."
)

// Writer renders and writes report documents. The clock is injectable so the
// embedded generation date is testable.
type Writer struct {
	Now func() time.Time
}

// NewWriter returns a writer using the wall clock.
func NewWriter() *Writer {
	return &Writer{Now: time.Now}
}

// Filename returns the conventional document name for a query:
// PharmaScout_Report_<query>.md. Path separators in the query are flattened
// so the name stays a single file.
func Filename(query string) string {
	safe := strings.NewReplacer("/", "-", "\\", "-", string(os.PathSeparator), "-").Replace(query)
	return fmt.Sprintf("PharmaScout_Report_%s.md", safe)
}

// Render produces the markdown document body for a projected report.
func (w *Writer) Render(doc report.Document) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", productName)
	b.WriteString("CONFIDENTIAL — INTERNAL USE ONLY\n\n")
	fmt.Fprintf(&b, "## Opportunity Analysis: %s\n\n", doc.Query)
	fmt.Fprintf(&b, "Generated on %s • Job ID: %s\n\n",
		w.Now().Format("2006-01-02"), doc.ShortJobID)

	// Scorecard
	fmt.Fprintf(&b, "**Overall Score: %d/100** — Recommendation: **%s**\n\n",
		doc.OverallScore, doc.Recommendation)
	b.WriteString("| Metric | Score |\n|---|---|\n")
	for _, row := range doc.Breakdown {
		fmt.Fprintf(&b, "| %s | %d/100 |\n", row.Label, row.Value)
	}
	b.WriteString("\n")

	if doc.Summary != "" {
		b.WriteString("## Executive Summary\n\n")
		fmt.Fprintf(&b, "%s\n\n", doc.Summary)
	}

	if len(doc.Rationale) > 0 {
		b.WriteString("## Detailed Rationale\n\n")
		for _, entry := range doc.Rationale {
			fmt.Fprintf(&b, "**%s:** %s\n\n", entry.Heading, entry.Text)
		}
	}

	if len(doc.Risks) > 0 {
		b.WriteString("## Key Risks\n\n")
		for _, risk := range doc.Risks {
			fmt.Fprintf(&b, "- %s\n", risk)
		}
		b.WriteString("\n")
	}

	if len(doc.NextSteps) > 0 {
		b.WriteString("## Strategic Next Steps\n\n")
		for _, step := range doc.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
		b.WriteString("\n")
	}

	if len(doc.Agents) > 0 {
		b.WriteString("## Intelligence Source Logs\n\n")
		for _, agent := range doc.Agents {
			fmt.Fprintf(&b, "### %s (%s)\n\n", agent.Name, agent.Status)
			if agent.Summary != "" {
				fmt.Fprintf(&b, "%s\n\n", agent.Summary)
			}
			for _, finding := range agent.Findings {
				fmt.Fprintf(&b, "- %s\n", finding)
			}
			if len(agent.Findings) > 0 {
				b.WriteString("\n")
			}
		}
	}

	fmt.Fprintf(&b, "---\n\n%s\n", disclaimer)
	return []byte(b.String())
}

// Write renders the document and writes it under dir (current directory when
// empty), returning the full path written.
func (w *Writer) Write(dir string, doc report.Document) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	path := filepath.Join(dir, Filename(doc.Query))
	if err := os.WriteFile(path, w.Render(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report document: %w", err)
	}
	return path, nil
}
