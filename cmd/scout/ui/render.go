package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pharmascout/internal/portfolio"
	"pharmascout/internal/report"
)

const barWidth = 24

// RenderDocument renders the full report view for a projected report. The
// interactive dashboard scrolls this inside a viewport; the --plain path
// prints it once. Same projection, same sections, so on-screen content always
// matches the exported document.
func RenderDocument(doc report.Document, width int) string {
	s := DefaultStyles()
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width - 4)

	var sections []string

	// Header
	header := s.Kicker.Render("OPPORTUNITY ANALYSIS REPORT") + "\n" +
		s.Title.Render(doc.Query)
	if doc.Summary != "" {
		header += "\n" + wrap.Inherit(s.Summary).Render(doc.Summary)
	}
	sections = append(sections, header)

	// Overall score and recommendation
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(ScoreColor(doc.OverallScore))
	recStyle := lipgloss.NewStyle().Bold(true).Foreground(RecommendationColor(doc.Class))
	sections = append(sections, s.Panel.Render(
		fmt.Sprintf("%s  %s\n%s  %s",
			s.MutedText.Render("OVERALL SCORE"),
			scoreStyle.Render(fmt.Sprintf("%d/100", doc.OverallScore)),
			s.MutedText.Render("RECOMMENDATION"),
			recStyle.Render(doc.Recommendation))))

	// Score breakdown bars
	var rows []string
	rows = append(rows, s.PanelTitle.Render("Score Breakdown"))
	for _, row := range doc.Breakdown {
		rows = append(rows, fmt.Sprintf("%-20s %s %3d/100",
			s.Label.Render(row.Label),
			Bar(row.Value, barWidth, ScoreColor(row.Value)),
			row.Value))
	}
	sections = append(sections, s.Panel.Render(strings.Join(rows, "\n")))

	// Rationale
	if len(doc.Rationale) > 0 {
		var rat []string
		rat = append(rat, s.PanelTitle.Render("Executive Rationale"))
		for _, entry := range doc.Rationale {
			rat = append(rat, s.Kicker.Render(strings.ToUpper(entry.Heading)))
			rat = append(rat, wrap.Render(entry.Text))
		}
		sections = append(sections, s.Panel.Render(strings.Join(rat, "\n")))
	}

	if block := bulletSection(s, "Key Risks", doc.Risks, Danger, width); block != "" {
		sections = append(sections, block)
	}
	if block := bulletSection(s, "Strategic Next Steps", doc.NextSteps, Primary, width); block != "" {
		sections = append(sections, block)
	}

	// Agent telemetry
	if len(doc.Agents) > 0 {
		var lines []string
		lines = append(lines, s.PanelTitle.Render("Agent Telemetry"))
		for _, agent := range doc.Agents {
			lines = append(lines, fmt.Sprintf("%s %s",
				s.AgentName.Render("["+agent.Name+"]"),
				s.MutedText.Render(agent.Status)))
			if agent.Summary != "" {
				lines = append(lines, wrap.Inherit(s.Mono).Render("> "+agent.Summary))
			}
			for _, finding := range agent.Findings {
				lines = append(lines, wrap.Inherit(s.MutedText).Render("  • "+finding))
			}
		}
		sections = append(sections, s.Panel.Render(strings.Join(lines, "\n")))
	}

	return strings.Join(sections, "\n\n")
}

func bulletSection(s Styles, title string, items []string, color lipgloss.Color, width int) string {
	if len(items) == 0 {
		return ""
	}
	wrap := lipgloss.NewStyle().Width(width - 6)
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)}
	for _, item := range items {
		lines = append(lines, s.Bullet.Render("•")+" "+wrap.Inherit(s.Label).Render(item))
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

// RenderPortfolio renders the portfolio summary stats and report list.
func RenderPortfolio(view portfolio.View, summary portfolio.Summary, width int) string {
	s := DefaultStyles()
	if width <= 0 {
		width = 80
	}

	var sections []string

	greeting := "Welcome back."
	if view.Profile != nil {
		greeting = fmt.Sprintf("Welcome back, %s.", view.Profile.FirstName)
	}
	sections = append(sections, s.Title.Render(greeting)+"\n"+
		s.MutedText.Render("Here is the status of your intelligence portfolio."))

	stat := func(label string, value string) string {
		return s.Panel.Render(s.MutedText.Render(label) + "\n" + s.Title.Render(value))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		stat("TOTAL ANALYSES", fmt.Sprintf("%d", summary.TotalReports)),
		stat("HIGH POTENTIAL", fmt.Sprintf("%d", summary.HighPotentialCount)),
		stat("TOP AREA", summary.TopArea)))

	if len(view.Reports) == 0 {
		sections = append(sections, s.MutedText.Render("No reports found. Run 'scout evaluate <query>' to start your first analysis."))
		return strings.Join(sections, "\n\n")
	}

	var lines []string
	lines = append(lines, s.PanelTitle.Render("Recent Activity"))
	for _, r := range view.Reports {
		scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(ScoreColor(r.Scores.OverallScore))
		recStyle := lipgloss.NewStyle().Foreground(RecommendationColor(r.Narrative.Class()))
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("%3d", r.Scores.OverallScore)),
			s.Label.Render(r.Query),
			recStyle.Render(r.Narrative.DisplayRecommendation()),
			s.Mono.Render("ID: "+r.ShortJobID())))
	}
	sections = append(sections, s.Panel.Render(strings.Join(lines, "\n")))

	return strings.Join(sections, "\n\n")
}
