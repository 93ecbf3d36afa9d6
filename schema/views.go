package schema

import "time"

// ForecastTable is the pivoted (customer x period) form of the projection
// output that the forecast view renders.
type ForecastTable struct {
	Customers []string                      // Row order, highest combined total first
	Periods   []string                      // Column order, chronological
	Cells     map[string]map[string]float64 // customer -> period -> value
	Realized  map[string]struct{}           // Periods backed by historical data
	Totals    map[string]float64            // Per-period column totals
}

// IsRealized reports whether a period column is backed by historical data.
func (t *ForecastTable) IsRealized(period string) bool {
	_, ok := t.Realized[period]
	return ok
}

// Value returns the cell value for a customer and period, zero when absent.
func (t *ForecastTable) Value(customer, period string) float64 {
	row, ok := t.Cells[customer]
	if !ok {
		return 0
	}
	return row[period]
}

// PipelineItem is one activation enriched with countdown information.
type PipelineItem struct {
	Record          ActivationRecord
	DaysToActivate  int    // Calendar days until the expected date, negative when overdue
	ActivationLabel string // Period label of the expected activation month
}

// PipelineStats summarizes the activation pipeline.
type PipelineStats struct {
	Total              int            `json:"total"`
	TotalMRR           float64        `json:"total_mrr"`
	AverageTicket      float64        `json:"average_ticket"`
	DueWithin30Days    int            `json:"due_within_30_days"`
	NextMonthLabel     string         `json:"next_month_label"`
	NextMonthCount     int            `json:"next_month_count"`
	NextMonthIncrement float64        `json:"next_month_increment"`
	Items              []PipelineItem `json:"-"`
}

// MixSlice is the revenue share of one service type.
type MixSlice struct {
	ServiceType string  `json:"service_type"`
	Total       float64 `json:"total"`
	Share       float64 `json:"share"` // Percentage of overall revenue
}

// ConsolidatedPoint is one period of the consolidated revenue series.
type ConsolidatedPoint struct {
	Period string  `json:"period"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Total  float64 `json:"total"`
	Kind   RowKind `json:"kind"`
}

// ConsolidatedSummary carries the headline figures of the consolidated view.
type ConsolidatedSummary struct {
	TotalRevenue    float64             `json:"total_revenue"`
	CustomerCount   int                 `json:"customer_count"`
	AverageTicket   float64             `json:"average_ticket"`
	LastPeriod      string              `json:"last_period"`
	LastPeriodTotal float64             `json:"last_period_total"`
	GrowthPct       float64             `json:"growth_pct"` // Last vs previous period
	NextMonthTotal  float64             `json:"next_month_total"`
	Series          []ConsolidatedPoint `json:"series"`
}

// SnapshotStatus reports the state of the snapshot store backend.
type SnapshotStatus struct {
	Backend      string
	Connected    bool
	TotalEntries int
	SizeBytes    int64
	OldestWrite  time.Time
	NewestWrite  time.Time
}
