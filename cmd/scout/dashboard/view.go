package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pharmascout/cmd/scout/ui"
)

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return m.loadingView()
	case stateFailed:
		return m.failedView()
	case stateLoaded:
		return m.loadedView()
	default:
		return m.idleView()
	}
}

func (m Model) idleView() string {
	var b strings.Builder
	b.WriteString(m.styles.Kicker.Render("PHARMA SCOUT") + "\n")
	b.WriteString(m.styles.Title.Render("What opportunity should we analyze?") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.styles.Help.Render("enter: analyze • esc: quit"))
	return b.String()
}

func (m Model) loadingView() string {
	var b strings.Builder
	b.WriteString(m.styles.Kicker.Render("PHARMA SCOUT") + "\n")
	b.WriteString(m.styles.Title.Render("Analyzing "+m.query) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), m.styles.Label.Render(phases[m.phase])))

	// One dot per phase, current one lit.
	var dots []string
	for i := range phases {
		if i == m.phase {
			dots = append(dots, lipgloss.NewStyle().Foreground(ui.Primary).Render("●"))
		} else {
			dots = append(dots, m.styles.Help.Render("●"))
		}
	}
	b.WriteString(strings.Join(dots, " ") + "\n\n")
	b.WriteString(m.styles.Help.Render("esc: back to search"))
	return b.String()
}

func (m Model) failedView() string {
	var b strings.Builder
	b.WriteString(m.styles.ErrorText.Render(m.errMsg) + "\n\n")
	b.WriteString(m.styles.Help.Render("enter: return to search • q: quit"))
	return b.String()
}

func (m Model) loadedView() string {
	footer := m.styles.Help.Render("e: export • n: new search • r: re-run • ↑/↓: scroll • q: quit")
	if m.exportNote != "" {
		footer = m.exportNote + "\n" + footer
	}
	if !m.ready {
		return ui.RenderDocument(m.doc, m.width) + "\n" + footer
	}
	return m.viewport.View() + "\n" + footer
}
