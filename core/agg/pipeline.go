package agg

import (
	"sort"
	"time"

	"github.com/basetelco/revcast/core/engine"
	"github.com/basetelco/revcast/schema"
)

// PipelineFilter restricts the pipeline view. Empty fields match everything.
type PipelineFilter struct {
	Customer string
	Product  string
	Status   string
}

func (f PipelineFilter) match(r schema.ActivationRecord) bool {
	if f.Customer != "" && r.Customer != f.Customer {
		return false
	}
	if f.Product != "" && r.Product != f.Product {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}

// BuildPipelineStats summarizes the activation pipeline relative to now:
// totals, average ticket, activations due within 30 days, and the count plus
// pro-rated revenue increment of activations expected next calendar month.
func BuildPipelineStats(activations []schema.ActivationRecord, now time.Time, filter PipelineFilter) schema.PipelineStats {
	nextMonth, nextYear := schema.NextMonth(int(now.Month()), now.Year())

	stats := schema.PipelineStats{
		NextMonthLabel: schema.PeriodLabel(nextMonth, nextYear),
	}

	for _, r := range activations {
		if !filter.match(r) {
			continue
		}
		days := int(r.ExpectedDate.Sub(now).Hours() / 24)
		stats.Items = append(stats.Items, schema.PipelineItem{
			Record:          r,
			DaysToActivate:  days,
			ActivationLabel: schema.PeriodLabel(int(r.ExpectedDate.Month()), r.ExpectedDate.Year()),
		})

		stats.Total++
		stats.TotalMRR += r.MonthlyValue
		if days <= 30 {
			stats.DueWithin30Days++
		}
		if int(r.ExpectedDate.Month()) == nextMonth && r.ExpectedDate.Year() == nextYear {
			stats.NextMonthCount++
			stats.NextMonthIncrement += engine.Prorate(r.ExpectedDate, r.MonthlyValue)
		}
	}

	if stats.Total > 0 {
		stats.AverageTicket = stats.TotalMRR / float64(stats.Total)
	}

	sort.Slice(stats.Items, func(i, j int) bool {
		ti := stats.Items[i].Record.ExpectedDate
		tj := stats.Items[j].Record.ExpectedDate
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return stats.Items[i].Record.Customer < stats.Items[j].Record.Customer
	})
	return stats
}
