// Package schema has configs, models and shared constants for all parts of revcast.
package schema

import "time"

// BillingRecord represents a single historical billing line item.
// Records are immutable once loaded; all aggregation happens downstream.
type BillingRecord struct {
	CustomerGroup string  // Canonical customer-group identifier used in output
	ServiceType   string  // Service type code (TOIP, CLDPBX, VIDEO, IP, CCENTER, OUT)
	Amount        float64 // Billed amount; may be negative or zero
	Month         int     // Billing month (1-12)
	Year          int     // Billing year
	Description   string  // Free-text month description used to build the period label
}

// ActivationRecord represents a pending customer activation in the pipeline.
// Product and Status are pass-through metadata; the projection math never
// reads them.
type ActivationRecord struct {
	Customer      string    // Raw customer name as it appears in the pipeline sheet
	NormalizedKey string    // Normalized customer key for cross-dataset matching
	ExpectedDate  time.Time // Expected activation date
	MonthlyValue  float64   // Monthly recurring value, non-negative
	Product       string    // Pass-through product metadata
	Status        string    // Pass-through status metadata
}

// ForecastRow is one (customer, period) cell of the projection output.
type ForecastRow struct {
	Customer string  `json:"customer"`
	Period   string  `json:"period"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
	Kind     RowKind `json:"kind"`
}

// HistoryTable is the injected historical billing dataset.
type HistoryTable struct {
	Records []BillingRecord
}

// Empty reports whether the table has no rows.
func (t HistoryTable) Empty() bool { return len(t.Records) == 0 }

// ActivationTable is the injected activation pipeline dataset.
type ActivationTable struct {
	Records []ActivationRecord
}

// Empty reports whether the table has no rows.
func (t ActivationTable) Empty() bool { return len(t.Records) == 0 }
