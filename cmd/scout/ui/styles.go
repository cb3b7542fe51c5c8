// Package ui provides the visual styling shared by the scout interactive
// views and the plain (non-TTY) renderer.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pharmascout/internal/model"
)

// Brand palette, lifted from the PharmaScout web product.
var (
	Primary    = lipgloss.Color("#10b981") // emerald
	Secondary  = lipgloss.Color("#38bdf8") // sky
	Accent     = lipgloss.Color("#a78bfa") // violet
	Muted      = lipgloss.Color("#71717a") // zinc
	Subtle     = lipgloss.Color("#3f3f46")
	Warning    = lipgloss.Color("#facc15")
	Danger     = lipgloss.Color("#ef4444")
	Foreground = lipgloss.Color("#f4f4f5")
)

// Styles holds the lipgloss styles used across the scout views.
type Styles struct {
	Title      lipgloss.Style
	Kicker     lipgloss.Style
	Summary    lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Label      lipgloss.Style
	MutedText  lipgloss.Style
	ErrorText  lipgloss.Style
	Help       lipgloss.Style
	Bullet     lipgloss.Style
	AgentName  lipgloss.Style
	Mono       lipgloss.Style
}

// DefaultStyles returns the scout styling.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Kicker:     lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Summary:    lipgloss.NewStyle().Foreground(Muted),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Subtle).Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Label:      lipgloss.NewStyle().Foreground(Foreground),
		MutedText:  lipgloss.NewStyle().Foreground(Muted),
		ErrorText:  lipgloss.NewStyle().Foreground(Danger),
		Help:       lipgloss.NewStyle().Foreground(Subtle),
		Bullet:     lipgloss.NewStyle().Foreground(Primary),
		AgentName:  lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Mono:       lipgloss.NewStyle().Foreground(Muted),
	}
}

// ScoreColor maps an overall score to its traffic-light color: above 75
// green, above 50 yellow, otherwise red.
func ScoreColor(score int) lipgloss.Color {
	switch {
	case score > 75:
		return Primary
	case score > 50:
		return Warning
	default:
		return Danger
	}
}

// RecommendationColor maps a recommendation class to its color.
func RecommendationColor(class model.RecommendationClass) lipgloss.Color {
	switch class {
	case model.ClassGo:
		return Primary
	case model.ClassNoGo:
		return Danger
	default:
		return Warning
	}
}

// Bar renders a horizontal percentage bar of the given width. Values are
// clamped to [0, 100] for drawing only.
func Bar(value, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	v := value
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	filled := v * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}
