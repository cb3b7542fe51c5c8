// scout is the PharmaScout terminal client: authenticate, submit a compound
// query for evaluation, browse the report interactively, and export it as a
// document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pharmascout/internal/api"
	"pharmascout/internal/config"
	"pharmascout/internal/credential"
)

var (
	// Global flags
	apiURL  string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "PharmaScout - drug repurposing opportunity reports from your terminal",
	Long: `scout is the terminal client for the PharmaScout evaluation service.

Submit a drug or compound query and the service's analysis agents score its
repurposing opportunity across scientific fit, commercial potential, IP risk
and supply feasibility. The report is shown interactively and can be exported
as a document.

Run without arguments to open the interactive search.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(config.DefaultPath())
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.API.BaseURL = apiURL
		}

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive search.
		return runEvaluate(cmd, nil)
	},
}

// buildClient wires the credential store into a gateway client.
func buildClient() (*api.Client, *credential.Store, error) {
	dir, err := credential.DefaultDir()
	if err != nil {
		return nil, nil, err
	}
	store, err := credential.NewStore(dir)
	if err != nil {
		return nil, nil, err
	}
	return api.NewClient(cfg.API.BaseURL, store, logger), store, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "PharmaScout service URL (overrides config and SCOUT_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
