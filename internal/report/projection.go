// Package report defines the single projection from a report to its display
// sections. Both the interactive dashboard and the exported document render
// this projection rather than reaching into the model themselves, so the two
// outputs cannot drift apart field by field.
package report

import (
	"pharmascout/internal/model"
)

// ScoreRow is one bar of the score breakdown.
type ScoreRow struct {
	Label string
	// Value is the displayed percentage. For IP risk this is the inverted
	// reading (100 - ip_risk); the model value is never changed.
	Value int
}

// RationaleEntry is one category of the narrative rationale.
type RationaleEntry struct {
	Heading string
	Text    string
}

// AgentDetail is one remote agent's summarized output.
type AgentDetail struct {
	Name     string
	Status   string
	Summary  string
	Findings []string
}

// Document is everything either renderer is allowed to show about a report.
type Document struct {
	Query          string
	JobID          string
	ShortJobID     string
	Summary        string
	Recommendation string
	Class          model.RecommendationClass
	OverallScore   int
	Breakdown      []ScoreRow
	Rationale      []RationaleEntry
	Risks          []string
	NextSteps      []string
	Agents         []AgentDetail
}

// rationaleOrder fixes the category order. Unknown rationale keys are
// ignored; a missing key drops the entry from both renderings.
var rationaleOrder = []struct {
	key     string
	heading string
}{
	{"scientific", "Scientific Fit"},
	{"commercial", "Commercial Potential"},
	{"ip", "IP & Legal"},
}

// Project maps a report onto its display document. Pure: the report is read,
// never mutated, and the same report always yields the same document.
func Project(r *model.Report) Document {
	doc := Document{
		Query:          r.Query,
		JobID:          r.JobID,
		ShortJobID:     r.ShortJobID(),
		Summary:        r.Narrative.Summary,
		Recommendation: r.Narrative.DisplayRecommendation(),
		Class:          r.Narrative.Class(),
		OverallScore:   r.Scores.OverallScore,
		Breakdown: []ScoreRow{
			{Label: "Scientific Fit", Value: r.Scores.ScientificFit},
			{Label: "Commercial", Value: r.Scores.CommercialPotential},
			{Label: "IP Risk (Inverse)", Value: r.Scores.InvertedIPRisk()},
			{Label: "Supply Chain", Value: r.Scores.SupplyFeasibility},
		},
	}

	for _, cat := range rationaleOrder {
		if text, ok := r.Narrative.Rationale[cat.key]; ok && text != "" {
			doc.Rationale = append(doc.Rationale, RationaleEntry{
				Heading: cat.heading,
				Text:    text,
			})
		}
	}

	doc.Risks = append(doc.Risks, r.Narrative.Risks...)
	doc.NextSteps = append(doc.NextSteps, r.Narrative.NextSteps...)

	for _, agent := range r.AgentDetails {
		doc.Agents = append(doc.Agents, AgentDetail{
			Name:     agent.AgentName,
			Status:   agent.Status,
			Summary:  agent.Summary,
			Findings: append([]string(nil), agent.KeyFindings...),
		})
	}

	return doc
}
