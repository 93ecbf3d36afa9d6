// Package agg has aggregation logic for billing and projection data. It
// consumes the projection engine's output contract and pivots it into the
// shapes the display layer renders.
package agg

import (
	"sort"

	"github.com/basetelco/revcast/schema"
)

// HistoricalTotals sums the full historical amount per customer group.
func HistoricalTotals(history []schema.BillingRecord) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range history {
		totals[r.CustomerGroup] += r.Amount
	}
	return totals
}

// TopCustomers returns up to limit customers ranked by historical total,
// highest first. A non-positive limit returns every customer.
func TopCustomers(history []schema.BillingRecord, limit int) []string {
	totals := HistoricalTotals(history)
	customers := make([]string, 0, len(totals))
	for c := range totals {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		if totals[customers[i]] != totals[customers[j]] {
			return totals[customers[i]] > totals[customers[j]]
		}
		return customers[i] < customers[j]
	})
	if limit > 0 && len(customers) > limit {
		customers = customers[:limit]
	}
	return customers
}

// BuildForecastTable pivots realized and forecast rows into a customer x
// period table restricted to the top-N historical customers. Customers that
// only exist in the forecast (new activations) are always included, since
// they have no historical total to rank by. Periods are ordered
// chronologically and the realized set marks columns backed by history.
func BuildForecastTable(realized, forecast []schema.ForecastRow, top []string) *schema.ForecastTable {
	keep := make(map[string]struct{}, len(top))
	for _, c := range top {
		keep[c] = struct{}{}
	}

	table := &schema.ForecastTable{
		Cells:    make(map[string]map[string]float64),
		Realized: make(map[string]struct{}),
		Totals:   make(map[string]float64),
	}
	periodSeen := make(map[string]struct{})
	historical := make(map[string]struct{})

	for _, row := range realized {
		historical[row.Customer] = struct{}{}
		table.Realized[row.Period] = struct{}{}
	}

	add := func(row schema.ForecastRow) {
		_, isHistorical := historical[row.Customer]
		if isHistorical {
			if _, ok := keep[row.Customer]; !ok {
				return
			}
		}
		cells, ok := table.Cells[row.Customer]
		if !ok {
			cells = make(map[string]float64)
			table.Cells[row.Customer] = cells
		}
		// Realized sums win over forecast values for the same period;
		// within a kind contributions accumulate.
		if row.Kind == schema.ForecastKind {
			if _, realizedPeriod := table.Realized[row.Period]; realizedPeriod {
				return
			}
		}
		cells[row.Period] += row.Value
		if _, ok := periodSeen[row.Period]; !ok {
			periodSeen[row.Period] = struct{}{}
			table.Periods = append(table.Periods, row.Period)
		}
	}
	for _, row := range realized {
		add(row)
	}
	for _, row := range forecast {
		add(row)
	}

	schema.SortPeriods(table.Periods)

	// Row order: combined total descending, then name for stability.
	rowTotal := make(map[string]float64, len(table.Cells))
	for customer, cells := range table.Cells {
		for _, v := range cells {
			rowTotal[customer] += v
		}
	}
	for customer := range table.Cells {
		table.Customers = append(table.Customers, customer)
	}
	sort.Slice(table.Customers, func(i, j int) bool {
		ci, cj := table.Customers[i], table.Customers[j]
		if rowTotal[ci] != rowTotal[cj] {
			return rowTotal[ci] > rowTotal[cj]
		}
		return ci < cj
	})

	for _, period := range table.Periods {
		for _, customer := range table.Customers {
			table.Totals[period] += table.Value(customer, period)
		}
	}
	return table
}
