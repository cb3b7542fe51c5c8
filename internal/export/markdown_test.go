package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pharmascout/internal/model"
	"pharmascout/internal/report"
)

func fixedWriter() *Writer {
	return &Writer{Now: func() time.Time {
		return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	}}
}

func fixtureDoc() report.Document {
	return report.Project(&model.Report{
		JobID:  "f3b9c2d1-1111-2222-3333-444444444444",
		Query:  "Metformin",
		Status: "completed",
		Scores: model.ScoreCard{
			ScientificFit:       80,
			CommercialPotential: 85,
			IPRisk:              20,
			SupplyFeasibility:   78,
			OverallScore:        82,
		},
		Narrative: model.Narrative{
			Summary:        "Strong repurposing candidate.",
			Recommendation: "GO",
			Rationale: map[string]string{
				"scientific": "Good trial coverage.",
				"commercial": "Large addressable market.",
				"ip":         "Expired composition patents.",
			},
			Risks:     []string{"Generic competition"},
			NextSteps: []string{"File IP review"},
		},
		AgentDetails: []model.AgentSummary{
			{AgentName: "Supply Agent (MOCK)", Status: "completed", Summary: "Two suppliers identified", KeyFindings: []string{"API available in EU"}},
		},
	})
}

func TestRenderContainsReportValues(t *testing.T) {
	out := string(fixedWriter().Render(fixtureDoc()))

	for _, want := range []string{
		"Opportunity Analysis: Metformin",
		"Overall Score: 82/100",
		"**GO**",
		"Generic competition",
		"File IP review",
		"| Scientific Fit | 80/100 |",
		"| IP Risk (Inverse) | 80/100 |",
		"Good trial coverage.",
		"Supply Agent (MOCK)",
		"API available in EU",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderEmbedsDocumentMetadata(t *testing.T) {
	out := string(fixedWriter().Render(fixtureDoc()))
	if !strings.Contains(out, "Generated on 2026-03-14") {
		t.Error("document missing generation date")
	}
	if !strings.Contains(out, "Job ID: f3b9c2d1") {
		t.Error("document missing truncated job id")
	}
	if strings.Contains(out, "f3b9c2d1-1111") {
		t.Error("document leaks the full job id; only the 8-char prefix is metadata")
	}
}

func TestRenderPreservesSequenceOrder(t *testing.T) {
	doc := fixtureDoc()
	doc.Risks = []string{"first risk", "second risk", "third risk"}
	out := string(fixedWriter().Render(doc))

	a := strings.Index(out, "first risk")
	b := strings.Index(out, "second risk")
	c := strings.Index(out, "third risk")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Errorf("risk order not preserved: %d %d %d", a, b, c)
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	doc := fixtureDoc()
	doc.Risks = nil
	doc.NextSteps = nil
	doc.Agents = nil
	out := string(fixedWriter().Render(doc))

	for _, heading := range []string{"Key Risks", "Strategic Next Steps", "Intelligence Source Logs"} {
		if strings.Contains(out, heading) {
			t.Errorf("empty section %q still rendered", heading)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	w := fixedWriter()
	doc := fixtureDoc()
	if !bytes.Equal(w.Render(doc), w.Render(doc)) {
		t.Error("rendering the same document twice produced different output")
	}
}

func TestFilenameConvention(t *testing.T) {
	if got := Filename("Metformin"); got != "PharmaScout_Report_Metformin.md" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("a/b"); strings.ContainsAny(got, "/\\") {
		t.Errorf("Filename %q contains a path separator", got)
	}
}

func TestWriteCreatesDocument(t *testing.T) {
	dir := t.TempDir()
	path, err := fixedWriter().Write(dir, fixtureDoc())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "PharmaScout_Report_Metformin.md" {
		t.Errorf("written path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "Overall Score: 82/100") {
		t.Error("written document missing content")
	}
}
