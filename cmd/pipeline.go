package cmd

import (
	"github.com/basetelco/revcast/core"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/spf13/cobra"
)

// pipelineCmd summarizes the pending activation pipeline.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Show the pending activation pipeline.",
	Long: `Summarize contracts that are sold but not yet billing.

Shows the activation backlog with countdowns to each expected date, the
total monthly recurring revenue at stake, the average ticket, and how much
revenue next month gains once the due activations go live.

Examples:
  # Full pipeline overview
  revcast pipeline --activations-file pipeline.csv

  # Only activations for one customer
  revcast pipeline --customer ACME

  # Narrow down by product and status
  revcast pipeline --product TOIP --status "EM ATIVAÇÃO"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePipeline(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run pipeline summary", err)
		}
	},
}
