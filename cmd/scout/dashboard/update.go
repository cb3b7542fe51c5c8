package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pharmascout/cmd/scout/ui"
	"pharmascout/internal/api"
	"pharmascout/internal/model"
	"pharmascout/internal/report"
)

// startEvaluationMsg requests a new evaluation for a query.
type startEvaluationMsg struct {
	query string
}

// evaluateResultMsg carries the settled evaluate call. generation identifies
// which request this answers; stale results are dropped in Update.
type evaluateResultMsg struct {
	generation int
	report     *model.Report
	err        error
}

// phaseTickMsg advances the cosmetic stepper. The chain dies on its own when
// the generation moves on or loading ends.
type phaseTickMsg struct {
	generation int
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		if m.state == stateLoaded {
			m.viewport.SetContent(ui.RenderDocument(m.doc, m.width))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startEvaluationMsg:
		return m.startEvaluation(msg.query)

	case evaluateResultMsg:
		// A response for a superseded query must not touch state.
		if msg.generation != m.generation || m.state != stateLoading {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrAuthRejected) || errors.Is(msg.err, api.ErrUnauthenticated) {
				// Route to re-authentication, no error banner.
				m.authRejected = true
				return m, tea.Quit
			}
			m.state = stateFailed
			m.errMsg = api.UserMessage(msg.err)
			return m, nil
		}
		m.state = stateLoaded
		m.rep = msg.report
		m.doc = report.Project(msg.report)
		m.exportNote = ""
		if m.ready {
			m.viewport.SetContent(ui.RenderDocument(m.doc, m.width))
			m.viewport.GotoTop()
		}
		return m, nil

	case phaseTickMsg:
		if msg.generation != m.generation || m.state != stateLoading {
			return m, nil
		}
		m.phase = (m.phase + 1) % len(phases)
		return m, phaseTickCmd(m.generation)

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		switch m.state {
		case stateLoaded, stateFailed, stateLoading:
			// Back to search. The in-flight request, if any, is abandoned;
			// its result arrives with a stale generation and is dropped.
			return m.toIdle(), nil
		default:
			return m, tea.Quit
		}
	}

	switch m.state {
	case stateIdle:
		if msg.Type == tea.KeyEnter {
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			// Query matches the report we already hold: show it, don't
			// re-fetch. An explicit re-run goes through ctrl+r on the
			// loaded view. The held report's query is the reference here,
			// not the last requested one, which may belong to an
			// abandoned in-flight evaluation.
			if m.rep != nil && query == m.rep.Query {
				m.query = query
				m.state = stateLoaded
				if m.ready {
					m.viewport.SetContent(ui.RenderDocument(m.doc, m.width))
				}
				return m, nil
			}
			return m.startEvaluation(query)
		}

	case stateLoaded:
		switch msg.String() {
		case "e":
			return m.exportReport()
		case "n":
			return m.toIdle(), nil
		case "r", "ctrl+r":
			return m.startEvaluation(m.query)
		case "q":
			return m, tea.Quit
		}

	case stateFailed:
		if msg.Type == tea.KeyEnter {
			return m.toIdle(), nil
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
	}

	return m.updateFocused(msg)
}

// updateFocused forwards remaining messages to whichever component owns the
// current state.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateIdle:
		m.input, cmd = m.input.Update(msg)
	case stateLoaded:
		if m.ready {
			m.viewport, cmd = m.viewport.Update(msg)
		}
	}
	return m, cmd
}

// startEvaluation begins a new request generation: loading state, stepper
// reset to the first phase, evaluate dispatched in the background.
func (m Model) startEvaluation(query string) (tea.Model, tea.Cmd) {
	m.generation++
	m.query = query
	m.state = stateLoading
	m.phase = 0
	m.errMsg = ""
	m.exportNote = ""
	return m, tea.Batch(
		m.evaluateCmd(m.generation, query),
		phaseTickCmd(m.generation),
		m.spinner.Tick,
	)
}

func (m Model) evaluateCmd(generation int, query string) tea.Cmd {
	gw, timeout := m.gw, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		rep, err := gw.Evaluate(ctx, query)
		return evaluateResultMsg{generation: generation, report: rep, err: err}
	}
}

func phaseTickCmd(generation int) tea.Cmd {
	return tea.Tick(phaseInterval, func(time.Time) tea.Msg {
		return phaseTickMsg{generation: generation}
	})
}

func (m Model) toIdle() Model {
	m.state = stateIdle
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m Model) exportReport() (tea.Model, tea.Cmd) {
	path, err := m.exporter.Write(m.exportDir, m.doc)
	if err != nil {
		m.exportNote = m.styles.ErrorText.Render("Export failed: " + err.Error())
		return m, nil
	}
	m.exportNote = m.styles.Kicker.Render("Exported " + path)
	return m, nil
}
