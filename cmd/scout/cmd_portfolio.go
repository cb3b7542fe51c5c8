package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pharmascout/cmd/scout/ui"
	"pharmascout/internal/portfolio"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show your saved reports and portfolio statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := buildClient()
		if err != nil {
			return err
		}
		if _, ok := store.Token(); !ok {
			return fmt.Errorf("you are not logged in. Run 'scout login' first")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.ParsedTimeout())
		defer cancel()

		agg := portfolio.NewAggregator(client, logger)
		view := agg.Fetch(ctx)

		// A 401 on either half clears the store; detect it afterwards so the
		// user gets the re-login hint instead of two empty sections.
		if _, ok := store.Token(); !ok {
			return fmt.Errorf("your session has expired. Run 'scout login' to continue")
		}

		summary := portfolio.Summarize(view.Reports)
		fmt.Println(ui.RenderPortfolio(view, summary, 100))
		return nil
	},
}
