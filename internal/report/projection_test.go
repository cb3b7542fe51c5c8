package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pharmascout/internal/model"
)

func fixture() *model.Report {
	return &model.Report{
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
			Risks:     []string{"Generic competition", "Payer pushback"},
			NextSteps: []string{"File IP review", "Commission market study"},
		},
		AgentDetails: []model.AgentSummary{
			{AgentName: "Clinical Trials Agent (LIVE)", Status: "completed", Summary: "12 trials found", KeyFindings: []string{"Phase III ongoing", "Strong endpoints"}},
			{AgentName: "IP Guardian (WEB SEARCH)", Status: "completed", Summary: "Low risk", KeyFindings: nil},
		},
	}
}

func TestProjectFields(t *testing.T) {
	doc := Project(fixture())

	if doc.Query != "Metformin" || doc.OverallScore != 82 {
		t.Errorf("header = %q/%d", doc.Query, doc.OverallScore)
	}
	if doc.ShortJobID != "f3b9c2d1" {
		t.Errorf("ShortJobID = %q", doc.ShortJobID)
	}
	if doc.Recommendation != "GO" || doc.Class != model.ClassGo {
		t.Errorf("recommendation = %q class %v", doc.Recommendation, doc.Class)
	}
}

func TestProjectInvertsIPRiskWithoutMutating(t *testing.T) {
	r := fixture()
	doc := Project(r)

	var ipRow *ScoreRow
	for i := range doc.Breakdown {
		if doc.Breakdown[i].Label == "IP Risk (Inverse)" {
			ipRow = &doc.Breakdown[i]
		}
	}
	if ipRow == nil {
		t.Fatal("no inverted IP risk row in breakdown")
	}
	if ipRow.Value != 80 {
		t.Errorf("inverted IP risk = %d, want 80", ipRow.Value)
	}
	if r.Scores.IPRisk != 20 {
		t.Errorf("projection mutated stored ip_risk to %d", r.Scores.IPRisk)
	}
}

func TestProjectPreservesSequenceOrder(t *testing.T) {
	r := fixture()
	doc := Project(r)

	if diff := cmp.Diff(r.Narrative.Risks, doc.Risks); diff != "" {
		t.Errorf("risks order changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r.Narrative.NextSteps, doc.NextSteps); diff != "" {
		t.Errorf("next steps order changed (-want +got):\n%s", diff)
	}
	if len(doc.Agents) != 2 || doc.Agents[0].Name != "Clinical Trials Agent (LIVE)" {
		t.Errorf("agent order changed: %+v", doc.Agents)
	}
	if diff := cmp.Diff([]string{"Phase III ongoing", "Strong endpoints"}, doc.Agents[0].Findings); diff != "" {
		t.Errorf("findings order changed (-want +got):\n%s", diff)
	}
}

func TestProjectRationaleOrderAndUnknownKeys(t *testing.T) {
	r := fixture()
	r.Narrative.Rationale["regulatory"] = "should be ignored"
	doc := Project(r)

	want := []RationaleEntry{
		{Heading: "Scientific Fit", Text: "Good trial coverage."},
		{Heading: "Commercial Potential", Text: "Large addressable market."},
		{Heading: "IP & Legal", Text: "Expired composition patents."},
	}
	if diff := cmp.Diff(want, doc.Rationale); diff != "" {
		t.Errorf("rationale (-want +got):\n%s", diff)
	}
}

func TestProjectOmitsMissingRationale(t *testing.T) {
	r := fixture()
	delete(r.Narrative.Rationale, "commercial")
	doc := Project(r)

	for _, entry := range doc.Rationale {
		if entry.Heading == "Commercial Potential" {
			t.Error("missing rationale key still projected")
		}
	}
	if len(doc.Rationale) != 2 {
		t.Errorf("rationale entries = %d, want 2", len(doc.Rationale))
	}
}

func TestProjectEmptySequences(t *testing.T) {
	r := fixture()
	r.Narrative.Risks = nil
	r.Narrative.NextSteps = []string{}
	r.AgentDetails = nil
	doc := Project(r)

	if len(doc.Risks) != 0 || len(doc.NextSteps) != 0 || len(doc.Agents) != 0 {
		t.Errorf("empty inputs projected as non-empty: %+v", doc)
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	r := fixture()
	first := Project(r)
	second := Project(r)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same report projected differently (-first +second):\n%s", diff)
	}
}
