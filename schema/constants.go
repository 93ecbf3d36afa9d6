package schema

// Custom string types for type safety.
type (
	// RowKind distinguishes realized billing from projected billing.
	RowKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshots.
	DatabaseBackend string

	// SourceKind represents where a dataset is loaded from.
	SourceKind string
)

// Row kinds used in forecast output.
const (
	RealizedKind RowKind = "Realizado"
	ForecastKind RowKind = "Previsto"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All dataset sources supported.
const (
	CSVSource      SourceKind = "csv" // default
	DatabaseSource SourceKind = "db"
)

// Service type codes present in the billing base.
const (
	ServiceTOIP    = "TOIP"
	ServiceCLDPBX  = "CLDPBX"
	ServiceVideo   = "VIDEO"
	ServiceIP      = "IP"
	ServiceCCenter = "CCENTER"
	ServiceOut     = "OUT"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid snapshot backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSourceKinds lists all valid dataset sources.
var ValidSourceKinds = map[SourceKind]struct{}{
	CSVSource:      {},
	DatabaseSource: {},
}
