package contract

import (
	"testing"
	"time"

	"github.com/basetelco/revcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Horizon:     DefaultHorizonMonths,
		Top:         DefaultTopLimit,
		Output:      "text",
		Precision:   DefaultPrecision,
		Color:       "yes",
		Source:      "csv",
		HistoryFile: "billing.csv",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{
			name:        "valid minimal config",
			mutate:      func(*ConfigRawInput) {},
			expectError: false,
		},
		{
			name:        "zero horizon allowed",
			mutate:      func(in *ConfigRawInput) { in.Horizon = 0 },
			expectError: false,
		},
		{
			name:        "negative horizon",
			mutate:      func(in *ConfigRawInput) { in.Horizon = -1 },
			expectError: true,
		},
		{
			name:        "horizon above maximum",
			mutate:      func(in *ConfigRawInput) { in.Horizon = MaxHorizonMonths + 1 },
			expectError: true,
		},
		{
			name:        "zero top",
			mutate:      func(in *ConfigRawInput) { in.Top = 0 },
			expectError: true,
		},
		{
			name:        "top above maximum",
			mutate:      func(in *ConfigRawInput) { in.Top = MaxTopLimit + 1 },
			expectError: true,
		},
		{
			name:        "invalid output format",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "output format case insensitive",
			mutate:      func(in *ConfigRawInput) { in.Output = "JSON" },
			expectError: false,
		},
		{
			name:        "invalid precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = 9 },
			expectError: true,
		},
		{
			name:        "invalid source",
			mutate:      func(in *ConfigRawInput) { in.Source = "xlsx" },
			expectError: true,
		},
		{
			name:        "csv source without history file",
			mutate:      func(in *ConfigRawInput) { in.HistoryFile = "" },
			expectError: true,
		},
		{
			name: "db source requires backend",
			mutate: func(in *ConfigRawInput) {
				in.Source = "db"
				in.SourceBackend = "none"
			},
			expectError: true,
		},
		{
			name: "db source with sqlite backend",
			mutate: func(in *ConfigRawInput) {
				in.Source = "db"
				in.SourceBackend = "sqlite"
				in.SourceConnect = "billing.db"
			},
			expectError: false,
		},
		{
			name: "mysql snapshots without connection string",
			mutate: func(in *ConfigRawInput) {
				in.SnapshotBackend = "mysql"
			},
			expectError: true,
		},
		{
			name:        "invalid snapshot ttl",
			mutate:      func(in *ConfigRawInput) { in.SnapshotTTL = "soon" },
			expectError: true,
		},
		{
			name:        "negative snapshot ttl",
			mutate:      func(in *ConfigRawInput) { in.SnapshotTTL = "-5m" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.SnapshotBackend = "sqlite"
			tt.mutate(in)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, in)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	in := validInput()
	in.SnapshotBackend = "sqlite"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, in))

	assert.Equal(t, DefaultHorizonMonths, cfg.HorizonMonths)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.CSVSource, cfg.Source)
	assert.Equal(t, DefaultSnapshotTTL, cfg.SnapshotTTL)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Now.IsZero())
}

func TestProcessAndValidateSnapshotTTL(t *testing.T) {
	in := validInput()
	in.SnapshotBackend = "sqlite"
	in.SnapshotTTL = "30m"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, in))
	assert.Equal(t, 30*time.Minute, cfg.SnapshotTTL)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{name: "sqlite no conn", backend: schema.SQLiteBackend, connStr: "", expectError: false},
		{name: "none backend", backend: schema.NoneBackend, connStr: "", expectError: false},
		{name: "mysql needs conn", backend: schema.MySQLBackend, connStr: "", expectError: true},
		{name: "mysql with conn", backend: schema.MySQLBackend, connStr: "root:pw@tcp(localhost:3306)/revcast", expectError: false},
		{name: "postgres needs conn", backend: schema.PostgreSQLBackend, connStr: "", expectError: true},
		{name: "unknown backend", backend: "oracle", connStr: "x", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseBoolFlag(t *testing.T) {
	assert.True(t, parseBoolFlag("yes"))
	assert.True(t, parseBoolFlag("true"))
	assert.True(t, parseBoolFlag(""))
	assert.True(t, parseBoolFlag("anything"))
	assert.False(t, parseBoolFlag("no"))
	assert.False(t, parseBoolFlag("FALSE"))
	assert.False(t, parseBoolFlag("0"))
	assert.False(t, parseBoolFlag(" off "))
}

func TestConfigClone(t *testing.T) {
	base := &Config{HorizonMonths: 6, TopLimit: 15, FilterCustomer: "ACME"}
	clone := base.Clone()

	clone.HorizonMonths = 12
	clone.FilterCustomer = "BRAVO"

	assert.Equal(t, 6, base.HorizonMonths)
	assert.Equal(t, "ACME", base.FilterCustomer)
	assert.Equal(t, 12, clone.HorizonMonths)
}
