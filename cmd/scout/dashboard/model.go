// Package dashboard is the interactive report view: a query goes in, the
// evaluate call runs as a background command, and the resulting report is
// rendered from the shared projection. While the call is outstanding a
// purely cosmetic phase stepper cycles through the pipeline stage labels.
//
// Split across files the usual way:
//   - model.go: types, construction, Init
//   - update.go: message handling, commands, request lifecycle
//   - view.go: rendering
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pharmascout/cmd/scout/ui"
	"pharmascout/internal/export"
	"pharmascout/internal/model"
	"pharmascout/internal/report"
)

// phaseInterval is how often the cosmetic stepper advances. Carries no
// semantic weight; the real request settles whenever it settles.
const phaseInterval = 2500 * time.Millisecond

// phases are the stage labels shown while an evaluation is in flight.
var phases = []string{
	"Connecting to ClinicalTrials.gov API...",
	"Scanning PubMed for recent literature...",
	"Analyzing Market & IP Landscape...",
	"Synthesizing Opportunity Score...",
	"Finalizing Report...",
}

// Evaluator is the slice of the gateway the dashboard needs.
type Evaluator interface {
	Evaluate(ctx context.Context, query string) (*model.Report, error)
}

type state int

const (
	stateIdle state = iota
	stateLoading
	stateLoaded
	stateFailed
)

// Model is the dashboard's bubbletea model.
type Model struct {
	gw        Evaluator
	timeout   time.Duration
	exporter  *export.Writer
	exportDir string

	state state
	query string

	// generation keys the in-flight request; responses and ticks carrying a
	// stale generation are discarded, so a newer evaluation always wins.
	generation int
	phase      int

	rep *model.Report
	doc report.Document

	errMsg       string
	authRejected bool
	exportNote   string

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	styles   ui.Styles

	width  int
	height int
	ready  bool
}

// New creates a dashboard. When query is non-empty the evaluation starts on
// Init; otherwise the model starts idle, waiting for input.
func New(gw Evaluator, timeout time.Duration, exporter *export.Writer, exportDir, query string) Model {
	in := textinput.New()
	in.Placeholder = "Enter a drug or compound, e.g. Metformin"
	in.CharLimit = 120
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.Primary)

	return Model{
		gw:        gw,
		timeout:   timeout,
		exporter:  exporter,
		exportDir: exportDir,
		query:     query,
		input:     in,
		spinner:   sp,
		styles:    ui.DefaultStyles(),
	}
}

// AuthRejected reports whether the session ended because the service rejected
// the credential. The caller routes to re-authentication instead of showing
// an error.
func (m Model) AuthRejected() bool { return m.authRejected }

// Report returns the currently displayed report, if any.
func (m Model) Report() *model.Report { return m.rep }

func (m Model) Init() tea.Cmd {
	if m.query != "" {
		return tea.Batch(startMsgCmd(m.query), textinput.Blink)
	}
	return textinput.Blink
}

// startMsgCmd kicks off an evaluation through the normal message flow so
// Init-triggered and key-triggered evaluations share one code path.
func startMsgCmd(query string) tea.Cmd {
	return func() tea.Msg { return startEvaluationMsg{query: query} }
}
