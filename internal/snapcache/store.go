// Package snapcache caches dataset snapshots in a SQL backend so repeated
// forecast runs can reuse recently loaded activation pipelines.
package snapcache

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// SnapshotStoreImpl handles durable snapshot storage using various database
// backends.
type SnapshotStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
	connStr   string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// NewSnapshotStore initializes a SnapshotStore for the given backend.
func NewSnapshotStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	if !tableNamePattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetSnapshotDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite snapshots at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr: user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL snapshots: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr: host=localhost port=5432 user=postgres dbname=revcast
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL snapshots: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// No-op store for disabled snapshotting
		return &SnapshotStoreImpl{tableName: tableName, backend: backend, connStr: connStr}, nil

	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SnapshotStoreImpl{db: db, tableName: tableName, backend: backend, connStr: connStr}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				snap_key VARCHAR(255) PRIMARY KEY,
				snap_value BLOB NOT NULL,
				snap_version INT NOT NULL,
				snap_timestamp BIGINT NOT NULL
			);
		`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				snap_key TEXT PRIMARY KEY,
				snap_value BYTEA NOT NULL,
				snap_version INTEGER NOT NULL,
				snap_timestamp BIGINT NOT NULL
			);
		`, tableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				snap_key TEXT PRIMARY KEY,
				snap_value BLOB NOT NULL,
				snap_version INTEGER NOT NULL,
				snap_timestamp INTEGER NOT NULL
			);
		`, tableName)
	}
}

// Get retrieves a snapshot by key from the store.
func (ps *SnapshotStoreImpl) Get(key string) ([]byte, int, int64, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	query := fmt.Sprintf(`SELECT snap_value, snap_version, snap_timestamp FROM %s WHERE snap_key = %s`, ps.tableName, ps.getPlaceholder(1))
	row := ps.db.QueryRow(query, key)
	if err := row.Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a snapshot in the store.
func (ps *SnapshotStoreImpl) Set(key string, value []byte, version int, timestamp int64) error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}
	_, err := ps.db.Exec(ps.getUpsertQuery(), key, value, version, timestamp)
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ps *SnapshotStoreImpl) getPlaceholder(n int) string {
	switch ps.backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("$%d", n)
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *SnapshotStoreImpl) getUpsertQuery() string {
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (snap_key, snap_value, snap_version, snap_timestamp) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE snap_value = new.snap_value, snap_version = new.snap_version, snap_timestamp = new.snap_timestamp`, ps.tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (snap_key, snap_value, snap_version, snap_timestamp) VALUES ($1, $2, $3, $4)
			ON CONFLICT (snap_key) DO UPDATE SET snap_value = EXCLUDED.snap_value, snap_version = EXCLUDED.snap_version, snap_timestamp = EXCLUDED.snap_timestamp`, ps.tableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (snap_key, snap_value, snap_version, snap_timestamp) VALUES (?, ?, ?, ?)`, ps.tableName)
	}
}

// Status returns status information about the snapshot store.
func (ps *SnapshotStoreImpl) Status() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*), COALESCE(SUM(LENGTH(snap_value)), 0), COALESCE(MIN(snap_timestamp), 0), COALESCE(MAX(snap_timestamp), 0) FROM %s", ps.tableName)
	var oldest, newest int64
	row := ps.db.QueryRow(countQuery)
	if err := row.Scan(&status.TotalEntries, &status.SizeBytes, &oldest, &newest); err != nil {
		return status, fmt.Errorf("failed to get snapshot stats: %w", err)
	}
	if oldest > 0 {
		status.OldestWrite = time.Unix(oldest, 0)
	}
	if newest > 0 {
		status.NewestWrite = time.Unix(newest, 0)
	}
	return status, nil
}

// Clear removes all snapshots. For SQLite the database file is deleted; for
// server backends the table is truncated.
func (ps *SnapshotStoreImpl) Clear() error {
	switch ps.backend {
	case schema.NoneBackend:
		return nil
	case schema.SQLiteBackend:
		dbPath := ps.connStr
		if dbPath == "" {
			dbPath = contract.GetSnapshotDBFilePath()
		}
		if ps.db != nil {
			_ = ps.db.Close()
			ps.db = nil
		}
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove snapshot database %q: %w", dbPath, err)
		}
		return nil
	default:
		if ps.db == nil {
			return nil
		}
		_, err := ps.db.Exec(fmt.Sprintf("DELETE FROM %s", ps.tableName))
		return err
	}
}

// Close closes the underlying DB connection.
func (ps *SnapshotStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}
