// Package model defines the report data model shared by the gateway and both
// renderers. Field names mirror the PharmaScout service wire format; unknown
// fields in service responses are tolerated and dropped on decode.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recommendation values the service is known to emit. Anything else is
// treated as a caution class, not an error.
const (
	RecommendationGo   = "GO"
	RecommendationNoGo = "NO_GO"
)

// RecommendationClass buckets a recommendation label for display purposes.
type RecommendationClass int

const (
	ClassGo RecommendationClass = iota
	ClassNoGo
	ClassCaution
)

// ScoreCard is the five-metric numeric scoring block of a report. Each field
// is a percentage in [0, 100]. OverallScore is computed by the service and is
// displayed as-is; the client never recomputes it from the other four.
type ScoreCard struct {
	ScientificFit       int `json:"scientific_fit"`
	CommercialPotential int `json:"commercial_potential"`
	IPRisk              int `json:"ip_risk"`
	SupplyFeasibility   int `json:"supply_feasibility"`
	OverallScore        int `json:"overall_score"`
}

// InvertedIPRisk returns the "goodness" reading of the IP risk magnitude
// (higher stored value = worse). The stored value is left untouched.
func (s ScoreCard) InvertedIPRisk() int {
	return 100 - s.IPRisk
}

// Narrative is the human-readable half of a report.
type Narrative struct {
	Summary        string            `json:"summary"`
	Recommendation string            `json:"recommendation"`
	Rationale      map[string]string `json:"rationale"`
	Risks          []string          `json:"risks"`
	NextSteps      []string          `json:"next_steps"`
}

// Class buckets the recommendation label. GO and NO_GO are the only labels
// with dedicated treatment; every other value (NEEDS_DATA, NEEDS_MORE_DATA,
// future additions) renders as caution.
func (n Narrative) Class() RecommendationClass {
	switch n.Recommendation {
	case RecommendationGo:
		return ClassGo
	case RecommendationNoGo:
		return ClassNoGo
	default:
		return ClassCaution
	}
}

// DisplayRecommendation returns the label with underscores spaced for humans,
// e.g. "NO_GO" -> "NO GO".
func (n Narrative) DisplayRecommendation() string {
	return strings.ReplaceAll(n.Recommendation, "_", " ")
}

// AgentSummary is the condensed output of one remote analysis agent.
type AgentSummary struct {
	AgentName   string   `json:"agent_name"`
	Status      string   `json:"status"`
	Summary     string   `json:"summary"`
	KeyFindings []string `json:"key_findings"`
}

// Report is the complete output of one evaluation. Immutable once received;
// renderers read it, nothing mutates it.
type Report struct {
	JobID        string         `json:"job_id"`
	Query        string         `json:"query"`
	Status       string         `json:"status"`
	Scores       ScoreCard      `json:"scores"`
	Narrative    Narrative      `json:"narrative"`
	AgentDetails []AgentSummary `json:"agent_details"`

	// scoresPresent records whether the scores block appeared in the wire
	// payload. A legitimate all-zero scorecard decodes identically to an
	// absent one, so presence has to be captured at decode time.
	scoresPresent bool
}

// UnmarshalJSON decodes a report and records whether the scores block was
// present, null and absent both counting as missing.
func (r *Report) UnmarshalJSON(data []byte) error {
	type plain Report
	aux := struct {
		*plain
		Scores *ScoreCard `json:"scores"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Scores != nil {
		r.Scores = *aux.Scores
		r.scoresPresent = true
	}
	return nil
}

// ShortJobID returns the first 8 characters of the job identifier, the form
// used for document metadata and list display.
func (r *Report) ShortJobID() string {
	if len(r.JobID) <= 8 {
		return r.JobID
	}
	return r.JobID[:8]
}

// Validate checks that the required fields of a decoded report are present:
// job_id, query, scores, narrative. It reports the first missing field; extra
// fields have already been dropped by the decoder and are not an error.
func (r *Report) Validate() error {
	switch {
	case r.JobID == "":
		return fmt.Errorf("report missing job_id")
	case r.Query == "":
		return fmt.Errorf("report missing query")
	case !r.scoresPresent:
		return fmt.Errorf("report missing scores")
	case r.Narrative.Summary == "" && r.Narrative.Recommendation == "":
		return fmt.Errorf("report missing narrative")
	}
	return nil
}

// UserProfile is the authenticated user's identity record. Read-only.
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName joins the profile name parts, tolerating blanks.
func (p UserProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Initials returns the one-letter initials used for the avatar badge.
func (p UserProfile) Initials() string {
	var b strings.Builder
	if p.FirstName != "" {
		b.WriteString(p.FirstName[:1])
	}
	if p.LastName != "" {
		b.WriteString(p.LastName[:1])
	}
	return strings.ToUpper(b.String())
}
