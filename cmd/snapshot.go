package cmd

import (
	"fmt"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/internal/snapcache"
	"github.com/basetelco/revcast/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need snapshot access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize snapshotting with the loaded config
	if err := snapcache.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotConnect = connStr

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotCmd focused on snapshot management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup)
// instead of the full sharedSetup used by the view commands. This avoids
// dataset validation for simple store operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage activation snapshots (avoids repeated dataset loads)",
	Long: `Manage the activation snapshot store.

Revcast snapshots the loaded activation pipeline so repeated forecast runs
inside the freshness window skip the underlying CSV or database read.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot statistics and connection info
  clear   - Remove all snapshot data
  migrate - Apply snapshot schema migrations

Examples:
  # Check snapshot status
  revcast snapshot status

  # Clear snapshots after activation data changed upstream
  revcast snapshot clear`,
}

// snapshotClearCmd clears the snapshot store.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all activation snapshot data",
	Long: `Delete all snapshot data from the configured backend.

Use this when:
- The activation pipeline changed upstream and you cannot wait out the TTL
- Snapshots may be stale or corrupted
- Testing load behavior without snapshots

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Truncates the snapshot table

Examples:
  # Clear SQLite snapshots (default)
  revcast snapshot clear

  # Clear MySQL snapshots (set connection string via env variable)
  REVCAST_SNAPSHOT_BACKEND=mysql REVCAST_SNAPSHOT_DB_CONNECT="..." revcast snapshot clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapcache.Manager.GetActivationStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		fmt.Println("Snapshots cleared successfully.")
	},
}

// snapshotStatusCmd shows snapshot store status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about the activation snapshot store.

Displays:
- Backend type and connection status
- Total number of stored snapshots
- Newest and oldest snapshot timestamps
- Snapshot table size

Examples:
  # Check snapshot status
  revcast snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapcache.Manager.GetActivationStore().Status()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		snapcache.PrintSnapshotStatus(status)
	},
}

// snapshotMigrateCmd applies snapshot schema migrations.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply snapshot schema migrations",
	Long: `Bring the snapshot schema to a target version.

By default migrates to the latest version. Pass --target-version 0 to roll
back to the initial state, or a positive number for a specific version.

Examples:
  # Migrate to the latest schema
  revcast snapshot migrate

  # Roll back everything
  revcast snapshot migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations open their own connection; only config loading is needed.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
		connStr := viper.GetString("snapshot-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			contract.LogFatal("Invalid snapshot configuration", err)
		}
		target := viper.GetInt("target-version")
		if err := snapcache.Migrate(backend, connStr, target); err != nil {
			contract.LogFatal("Failed to migrate snapshot schema", err)
		}
		fmt.Println("Snapshot schema migrated successfully.")
	},
}
