package agg

import (
	"testing"

	"github.com/basetelco/revcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realizedRow(customer string, value float64, month, year int) schema.ForecastRow {
	return schema.ForecastRow{
		Customer: customer,
		Period:   schema.PeriodLabel(month, year),
		Month:    month,
		Year:     year,
		Value:    value,
		Kind:     schema.RealizedKind,
	}
}

func forecastRow(customer string, value float64, month, year int) schema.ForecastRow {
	r := realizedRow(customer, value, month, year)
	r.Kind = schema.ForecastKind
	return r
}

// TestTopCustomers checks the total-descending ranking with a limit.
func TestTopCustomers(t *testing.T) {
	history := []schema.BillingRecord{
		{CustomerGroup: "SMALL", Amount: 100, Month: 5, Year: 2026},
		{CustomerGroup: "BIG", Amount: 500, Month: 5, Year: 2026},
		{CustomerGroup: "BIG", Amount: 500, Month: 6, Year: 2026},
		{CustomerGroup: "MID", Amount: 400, Month: 6, Year: 2026},
	}

	assert.Equal(t, []string{"BIG", "MID", "SMALL"}, TopCustomers(history, 0))
	assert.Equal(t, []string{"BIG", "MID"}, TopCustomers(history, 2))
}

// TestBuildForecastTable checks the pivot shape, ordering and totals.
func TestBuildForecastTable(t *testing.T) {
	realized := []schema.ForecastRow{
		realizedRow("ACME", 1000, 6, 2026),
		realizedRow("BRAVO", 400, 6, 2026),
	}
	forecast := []schema.ForecastRow{
		forecastRow("ACME", 1000, 7, 2026),
		forecastRow("BRAVO", 400, 7, 2026),
		forecastRow("Charlie Ltda", 900, 7, 2026),
	}

	table := BuildForecastTable(realized, forecast, []string{"ACME", "BRAVO"})

	assert.Equal(t, []string{"JUNHO/2026", "JULHO/2026"}, table.Periods)
	assert.True(t, table.IsRealized("JUNHO/2026"))
	assert.False(t, table.IsRealized("JULHO/2026"))

	// ACME (2000) > Charlie (900) > BRAVO (800) by combined total.
	assert.Equal(t, []string{"ACME", "Charlie Ltda", "BRAVO"}, table.Customers)

	assert.InDelta(t, 1000, table.Value("ACME", "JUNHO/2026"), 0.0001)
	assert.InDelta(t, 900, table.Value("Charlie Ltda", "JULHO/2026"), 0.0001)
	assert.Zero(t, table.Value("Charlie Ltda", "JUNHO/2026"))

	assert.InDelta(t, 1400, table.Totals["JUNHO/2026"], 0.0001)
	assert.InDelta(t, 2300, table.Totals["JULHO/2026"], 0.0001)
}

// TestBuildForecastTableTopFilter checks that historical customers outside
// the top list are dropped while forecast-only customers always stay.
func TestBuildForecastTableTopFilter(t *testing.T) {
	realized := []schema.ForecastRow{
		realizedRow("ACME", 1000, 6, 2026),
		realizedRow("TINY", 10, 6, 2026),
	}
	forecast := []schema.ForecastRow{
		forecastRow("TINY", 10, 7, 2026),
		forecastRow("Charlie Ltda", 900, 7, 2026),
	}

	table := BuildForecastTable(realized, forecast, []string{"ACME"})

	assert.NotContains(t, table.Cells, "TINY")
	assert.Contains(t, table.Cells, "Charlie Ltda")
	assert.Contains(t, table.Cells, "ACME")
}

// TestBuildForecastTableRealizedWins checks that a forecast row can never
// overwrite a realized period.
func TestBuildForecastTableRealizedWins(t *testing.T) {
	realized := []schema.ForecastRow{realizedRow("ACME", 1000, 6, 2026)}
	forecast := []schema.ForecastRow{forecastRow("ACME", 9999, 6, 2026)}

	table := BuildForecastTable(realized, forecast, []string{"ACME"})

	assert.InDelta(t, 1000, table.Value("ACME", "JUNHO/2026"), 0.0001)
}

// TestBuildForecastTableEmpty checks degenerate inputs.
func TestBuildForecastTableEmpty(t *testing.T) {
	table := BuildForecastTable(nil, nil, nil)
	require.NotNil(t, table)
	assert.Empty(t, table.Customers)
	assert.Empty(t, table.Periods)
}
