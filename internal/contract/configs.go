package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/basetelco/revcast/schema"
)

// Default values for configuration.
const (
	DefaultHorizonMonths = 6
	MaxHorizonMonths     = 36
	DefaultTopLimit      = 15
	MaxTopLimit          = 50
	DefaultPrecision     = 2
	DefaultSnapshotTTL   = 10 * time.Minute
)

// Config holds the validated runtime configuration for a forecast run.
// Simple fields are copied straight from flags; fields that need parsing or
// cross-checks are populated by ProcessAndValidate.
type Config struct {
	HorizonMonths int               // Number of future months to project
	TopLimit      int               // Maximum number of customers in the forecast table
	Output        schema.OutputMode // Output format
	OutputFile    string            // Optional path to write output to
	Precision     int               // Decimal precision for numeric columns
	Width         int               // Terminal width override (0 = auto-detect)
	Color         bool              // Colored labels in table output
	Now           time.Time         // Reference time for pipeline countdowns

	Source          schema.SourceKind      // Where datasets come from
	HistoryFile     string                 // CSV path for history (csv source)
	ActivationsFile string                 // CSV path for activations (csv source)
	SourceBackend   schema.DatabaseBackend // Database backend (db source)
	SourceConnect   string                 // Connection string (db source)

	SnapshotBackend schema.DatabaseBackend // Activation snapshot backend
	SnapshotConnect string                 // Connection string for mysql/postgresql snapshots
	SnapshotTTL     time.Duration          // Freshness window for cached activation snapshots

	FilterCustomer string // Pipeline view filter
	FilterProduct  string // Pipeline view filter
	FilterStatus   string // Pipeline view filter
}

// Clone returns a copy of the Config. MCP handlers mutate the copy with
// per-request parameters without touching the base configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from flags, env and config file.
// Viper unmarshals into this struct; ProcessAndValidate turns it into Config.
type ConfigRawInput struct {
	Horizon         int    `mapstructure:"horizon"`
	Top             int    `mapstructure:"top"`
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output-file"`
	Precision       int    `mapstructure:"precision"`
	Width           int    `mapstructure:"width"`
	Color           string `mapstructure:"color"`
	Source          string `mapstructure:"source"`
	HistoryFile     string `mapstructure:"history-file"`
	ActivationsFile string `mapstructure:"activations-file"`
	SourceBackend   string `mapstructure:"source-backend"`
	SourceConnect   string `mapstructure:"source-db-connect"`
	SnapshotBackend string `mapstructure:"snapshot-backend"`
	SnapshotConnect string `mapstructure:"snapshot-db-connect"`
	SnapshotTTL     string `mapstructure:"snapshot-ttl"`
	FilterCustomer  string `mapstructure:"customer"`
	FilterProduct   string `mapstructure:"product"`
	FilterStatus    string `mapstructure:"status"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Horizon and top-N bounds ---
	if input.Horizon < 0 || input.Horizon > MaxHorizonMonths {
		return fmt.Errorf("horizon must be between 0 and %d months (received %d)", MaxHorizonMonths, input.Horizon)
	}
	cfg.HorizonMonths = input.Horizon

	if input.Top <= 0 || input.Top > MaxTopLimit {
		return fmt.Errorf("top must be greater than 0 and cannot exceed %d (received %d)", MaxTopLimit, input.Top)
	}
	cfg.TopLimit = input.Top

	// --- 2. Output format and precision ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width
	cfg.Color = parseBoolFlag(input.Color)

	// --- 3. Dataset source ---
	cfg.Source = schema.SourceKind(strings.ToLower(input.Source))
	if _, ok := schema.ValidSourceKinds[cfg.Source]; !ok {
		return fmt.Errorf("invalid source %q. must be csv or db", input.Source)
	}
	switch cfg.Source {
	case schema.CSVSource:
		if input.HistoryFile == "" {
			return fmt.Errorf("history-file is required for the csv source")
		}
		cfg.HistoryFile = input.HistoryFile
		cfg.ActivationsFile = input.ActivationsFile
	case schema.DatabaseSource:
		backend := schema.DatabaseBackend(strings.ToLower(input.SourceBackend))
		if err := ValidateDatabaseConnectionString(backend, input.SourceConnect); err != nil {
			return err
		}
		if backend == schema.NoneBackend {
			return fmt.Errorf("source-backend cannot be none for the db source")
		}
		cfg.SourceBackend = backend
		cfg.SourceConnect = input.SourceConnect
	}

	// --- 4. Snapshot cache ---
	snapBackend := schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if err := ValidateDatabaseConnectionString(snapBackend, input.SnapshotConnect); err != nil {
		return err
	}
	cfg.SnapshotBackend = snapBackend
	cfg.SnapshotConnect = input.SnapshotConnect

	cfg.SnapshotTTL = DefaultSnapshotTTL
	if input.SnapshotTTL != "" {
		ttl, err := time.ParseDuration(input.SnapshotTTL)
		if err != nil {
			return fmt.Errorf("invalid snapshot-ttl %q: %w", input.SnapshotTTL, err)
		}
		if ttl < 0 {
			return fmt.Errorf("snapshot-ttl cannot be negative (received %s)", ttl)
		}
		cfg.SnapshotTTL = ttl
	}

	// --- 5. Pipeline filters and reference time ---
	cfg.FilterCustomer = strings.TrimSpace(input.FilterCustomer)
	cfg.FilterProduct = strings.TrimSpace(input.FilterProduct)
	cfg.FilterStatus = strings.TrimSpace(input.FilterStatus)
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}

	return nil
}

// ValidateDatabaseConnectionString checks backend/connection string pairing.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid backend %q. must be sqlite, mysql, postgresql, or none", backend)
	}
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s backend requires a connection string", backend)
		}
	}
	return nil
}

// parseBoolFlag interprets the yes/no style toggles used across flags.
func parseBoolFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "no", "false", "0", "off":
		return false
	default:
		return true
	}
}

// GetSnapshotDBFilePath returns the default SQLite file for activation snapshots.
func GetSnapshotDBFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".revcast-snapshots.db"
	}
	return filepath.Join(home, ".revcast-snapshots.db")
}
