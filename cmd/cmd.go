// Package cmd defines the command-line interface for revcast.
package cmd

import (
	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(consolidatedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(snapshotCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("horizon", "n", contract.DefaultHorizonMonths, "Number of future months to project")
	rootCmd.PersistentFlags().IntP("top", "t", contract.DefaultTopLimit, "Number of customers to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("source", string(schema.CSVSource), "Dataset source: csv or db")
	rootCmd.PersistentFlags().String("history-file", "", "CSV path for the billing history dataset")
	rootCmd.PersistentFlags().String("activations-file", "", "CSV path for the pending activations dataset")
	rootCmd.PersistentFlags().String("source-backend", "", "Database backend for the db source: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("source-db-connect", "", "Database connection string for the db source")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql snapshots (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("snapshot-ttl", contract.DefaultSnapshotTTL.String(), "Freshness window for cached activation snapshots")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of pipelineCmd to Viper
	pipelineCmd.Flags().String("customer", "", "Filter activations by customer name")
	pipelineCmd.Flags().String("product", "", "Filter activations by product name")
	pipelineCmd.Flags().String("status", "", "Filter activations by pipeline status")
	if err := viper.BindPFlags(pipelineCmd.Flags()); err != nil {
		contract.LogFatal("Error binding pipeline flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
