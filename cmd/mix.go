package cmd

import (
	"github.com/basetelco/revcast/core"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/spf13/cobra"
)

// mixCmd breaks historical revenue down by service type.
var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Show the revenue share per service type.",
	Long: `Break historical revenue down by service type.

Aggregates the full billing history per service (TOIP, CLDPBX, VIDEO, IP,
CCENTER, ...) and shows each service's share of total revenue, highest
first.

Examples:
  # Product mix from a CSV export
  revcast mix --history-file billing.csv

  # Machine-readable shares for a dashboard
  revcast mix --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMix(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run product mix", err)
		}
	},
}
