package cmd

import (
	"github.com/basetelco/revcast/core"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/spf13/cobra"
)

// consolidatedCmd shows the headline revenue summary.
var consolidatedCmd = &cobra.Command{
	Use:   "consolidated",
	Short: "Show the consolidated revenue summary.",
	Long: `Combine billing history and the projection into one summary.

Shows total historical revenue, the active customer count and average
ticket, period-over-period growth of the latest month, and the full
period series with realized months followed by projected ones.

Examples:
  # Headline figures plus the period series
  revcast consolidated --history-file billing.csv --activations-file pipeline.csv

  # Shorter projection tail
  revcast consolidated --horizon 3`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConsolidated(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run consolidated summary", err)
		}
	},
}
