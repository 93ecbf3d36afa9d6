package cmd

import (
	"github.com/basetelco/revcast/core"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the projection datasets to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export forecast and pipeline data to Parquet for BI tools",
	Long: `Export the projection datasets to Parquet format for analytics tools.

Writes two datasets next to the given output path:
- <output-file>.forecast.parquet - realized and projected revenue per
  customer and period
- <output-file>.pipeline.parquet - pending activations with countdowns

Parquet works directly with DuckDB, pandas (via pyarrow), Apache Spark and
most BI tools.

Requires: --output-file parameter

Examples:
  # Export both datasets
  revcast export --output-file revcast-data

  # Query the projection with DuckDB
  revcast export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.forecast.parquet') LIMIT 10"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}
