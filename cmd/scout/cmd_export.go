package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"pharmascout/internal/export"
	"pharmascout/internal/report"
)

var exportPreview bool

var exportCmd = &cobra.Command{
	Use:   "export <query...>",
	Short: "Evaluate a query and write the report document",
	Long: `Runs an evaluation and writes the report document
(PharmaScout_Report_<query>.md). With --preview the document is rendered to
the terminal instead of being written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		client, _, err := buildClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.ParsedEvaluateTimeout())
		defer cancel()

		rep, err := client.Evaluate(ctx, query)
		if err != nil {
			return errors.New(userFacing(err))
		}

		writer := export.NewWriter()
		doc := report.Project(rep)

		if exportPreview {
			rendered, err := glamour.Render(string(writer.Render(doc)), "dark")
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			fmt.Print(rendered)
			return nil
		}

		path, err := writer.Write(cfg.Export.Dir, doc)
		if err != nil {
			return err
		}
		fmt.Println("Exported", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportPreview, "preview", false, "render the document to the terminal instead of writing it")
}
