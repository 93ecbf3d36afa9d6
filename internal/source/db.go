package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/basetelco/revcast/core/engine"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// SQLSource reads both datasets from a billing database. The expected
// tables mirror the spreadsheet exports:
//
//	billing_history(customer_group, service_type, amount, month, year, description)
//	activations(customer, expected_date, monthly_value, product, status)
type SQLSource struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.DataSource = &SQLSource{} // Compile-time check

// NewSQLSource opens a database-backed data source.
func NewSQLSource(backend schema.DatabaseBackend, connStr string) (*SQLSource, error) {
	var driverName string
	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
	case schema.MySQLBackend:
		// connStr: user:password@tcp(host:port)/dbname
		driverName = "mysql"
	case schema.PostgreSQLBackend:
		// connStr: host=localhost port=5432 user=postgres dbname=billing
		driverName = "pgx"
	default:
		return nil, fmt.Errorf("unsupported source backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Single connection avoids "database is locked" errors
		db.SetMaxOpenConns(1)
	} else {
		db.SetConnMaxLifetime(30 * time.Minute)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s source. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return &SQLSource{db: db, backend: backend}, nil
}

// LoadHistory implements the HistorySource interface.
func (s *SQLSource) LoadHistory(ctx context.Context) (schema.HistoryTable, []string) {
	const query = `
		SELECT customer_group, service_type, amount, month, year, description
		FROM billing_history`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return schema.HistoryTable{}, []string{fmt.Sprintf("history query failed: %v", err)}
	}
	defer func() { _ = rows.Close() }()

	var table schema.HistoryTable
	var warnings []string
	dropped := 0
	for rows.Next() {
		var r schema.BillingRecord
		var desc sql.NullString
		if err := rows.Scan(&r.CustomerGroup, &r.ServiceType, &r.Amount, &r.Month, &r.Year, &desc); err != nil {
			dropped++
			continue
		}
		if r.Month < 1 || r.Month > 12 {
			dropped++
			continue
		}
		r.Description = desc.String
		table.Records = append(table.Records, r)
	}
	if err := rows.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("history scan interrupted: %v", err))
	}
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("dropped %d history rows with invalid fields", dropped))
	}
	return table, warnings
}

// LoadActivations implements the ActivationSource interface.
func (s *SQLSource) LoadActivations(ctx context.Context) (schema.ActivationTable, []string) {
	const query = `
		SELECT customer, expected_date, monthly_value, product, status
		FROM activations
		WHERE monthly_value > 0 AND expected_date IS NOT NULL`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return schema.ActivationTable{}, []string{fmt.Sprintf("activation query failed: %v", err)}
	}
	defer func() { _ = rows.Close() }()

	var table schema.ActivationTable
	var warnings []string
	dropped := 0
	for rows.Next() {
		var r schema.ActivationRecord
		var rawDate, product, status sql.NullString
		if err := rows.Scan(&r.Customer, &rawDate, &r.MonthlyValue, &product, &status); err != nil {
			dropped++
			continue
		}
		date, err := parseDate(rawDate.String)
		if err != nil || r.Customer == "" || r.MonthlyValue <= 0 {
			dropped++
			continue
		}
		r.ExpectedDate = date
		r.NormalizedKey = engine.Normalize(r.Customer)
		r.Product = product.String
		r.Status = status.String
		table.Records = append(table.Records, r)
	}
	if err := rows.Err(); err != nil {
		warnings = append(warnings, fmt.Sprintf("activation scan interrupted: %v", err))
	}
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("dropped %d activation rows with missing or invalid fields", dropped))
	}
	return table, warnings
}

// Close releases the underlying database handle.
func (s *SQLSource) Close() error {
	return s.db.Close()
}
