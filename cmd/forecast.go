package cmd

import (
	"github.com/basetelco/revcast/core"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/spf13/cobra"
)

// forecastCmd projects monthly recurring revenue per customer.
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show the month-by-month revenue projection per customer.",
	Long: `Project monthly recurring revenue over a future horizon.

The projection starts from each customer's revenue in the most recent billed
month and layers pending activations on top:
- In the activation month the contract value is pro-rated by remaining days
- From the following month onward the full monthly value applies
- Activations for unknown customers appear as new forecast rows

Examples:
  # Project six months ahead from CSV exports
  revcast forecast --history-file billing.csv --activations-file pipeline.csv

  # Widen the horizon and keep only the top 10 customers
  revcast forecast --horizon 12 --top 10

  # Export the projection to CSV for a spreadsheet
  revcast forecast --output csv --output-file forecast.csv

  # Read datasets from a PostgreSQL billing database
  revcast forecast --source db --source-backend postgresql --source-db-connect "host=localhost dbname=billing"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForecast(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run forecast", err)
		}
	},
}
