package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "finance-engine",
	Short: "Household finance projection engine",
	Long: `finance-engine projects a household's multi-decade financial trajectory —
salary, social-insurance contributions, housing fund, pension eligibility,
living expenses and savings — one simulated year at a time.

It runs either as a JSON-over-HTTP calculation service (serve) or as a
one-shot calculator over parameter files (project, scenarios).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file")
}

// Execute runs the command tree. Errors are already printed by cobra.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
