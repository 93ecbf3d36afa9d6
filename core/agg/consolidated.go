package agg

import (
	"sort"

	"github.com/basetelco/revcast/schema"
)

// BuildConsolidated produces the company-wide revenue series: per-period
// historical totals in chronological order followed by the aggregate
// projection, plus the headline figures of the consolidated view.
func BuildConsolidated(history []schema.BillingRecord, forecast []schema.ForecastRow) schema.ConsolidatedSummary {
	var summary schema.ConsolidatedSummary

	type periodKey struct{ month, year int }
	historic := make(map[periodKey]float64)
	customers := make(map[string]struct{})
	for _, r := range history {
		historic[periodKey{r.Month, r.Year}] += r.Amount
		customers[r.CustomerGroup] = struct{}{}
		summary.TotalRevenue += r.Amount
	}
	summary.CustomerCount = len(customers)
	if summary.CustomerCount > 0 {
		summary.AverageTicket = summary.TotalRevenue / float64(summary.CustomerCount)
	}

	keys := make([]periodKey, 0, len(historic))
	for k := range historic {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	for _, k := range keys {
		summary.Series = append(summary.Series, schema.ConsolidatedPoint{
			Period: schema.PeriodLabel(k.month, k.year),
			Month:  k.month,
			Year:   k.year,
			Total:  historic[k],
			Kind:   schema.RealizedKind,
		})
	}

	if n := len(summary.Series); n > 0 {
		last := summary.Series[n-1]
		summary.LastPeriod = last.Period
		summary.LastPeriodTotal = last.Total
		if n > 1 && summary.Series[n-2].Total > 0 {
			summary.GrowthPct = (last.Total/summary.Series[n-2].Total - 1) * 100
		}
	}

	// Fold in the projection, one aggregated point per future period.
	projected := make(map[periodKey]float64)
	var projKeys []periodKey
	for _, row := range forecast {
		k := periodKey{row.Month, row.Year}
		if _, ok := projected[k]; !ok {
			projKeys = append(projKeys, k)
		}
		projected[k] += row.Value
	}
	sort.Slice(projKeys, func(i, j int) bool {
		if projKeys[i].year != projKeys[j].year {
			return projKeys[i].year < projKeys[j].year
		}
		return projKeys[i].month < projKeys[j].month
	})
	for i, k := range projKeys {
		if i == 0 {
			summary.NextMonthTotal = projected[k]
		}
		summary.Series = append(summary.Series, schema.ConsolidatedPoint{
			Period: schema.PeriodLabel(k.month, k.year),
			Month:  k.month,
			Year:   k.year,
			Total:  projected[k],
			Kind:   schema.ForecastKind,
		})
	}
	return summary
}
