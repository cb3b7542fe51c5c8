package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pharmascout/cmd/scout/dashboard"
	"pharmascout/cmd/scout/ui"
	"pharmascout/internal/api"
	"pharmascout/internal/export"
	"pharmascout/internal/report"
)

var (
	evaluatePlain  bool
	evaluateExport bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [query...]",
	Short: "Evaluate a repurposing opportunity and view the report",
	Long: `Submits a query to the evaluation service and opens the interactive
report view. With --plain the report is printed once instead, suitable for
non-interactive terminals; --plain --export additionally writes the report
document.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().BoolVar(&evaluatePlain, "plain", false, "print the report instead of opening the interactive view")
	evaluateCmd.Flags().BoolVar(&evaluateExport, "export", false, "with --plain, also write the report document")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))

	client, _, err := buildClient()
	if err != nil {
		return err
	}

	if evaluatePlain {
		if query == "" {
			return fmt.Errorf("a query is required with --plain")
		}
		return evaluatePlainRun(cmd.Context(), client, query)
	}

	m := dashboard.New(client, cfg.API.ParsedEvaluateTimeout(), export.NewWriter(), cfg.Export.Dir, query)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if dm, ok := final.(dashboard.Model); ok && dm.AuthRejected() {
		fmt.Println("Your session has expired. Run 'scout login' to continue.")
	}
	return nil
}

// evaluatePlainRun is the non-interactive path: one fetch, one render of the
// same projection the dashboard shows.
func evaluatePlainRun(ctx context.Context, client *api.Client, query string) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.API.ParsedEvaluateTimeout())
	defer cancel()

	rep, err := client.Evaluate(ctx, query)
	if err != nil {
		return errors.New(userFacing(err))
	}

	doc := report.Project(rep)
	fmt.Println(ui.RenderDocument(doc, 100))

	if evaluateExport {
		path, err := export.NewWriter().Write(cfg.Export.Dir, doc)
		if err != nil {
			return err
		}
		fmt.Println("\nExported", path)
	}
	return nil
}
