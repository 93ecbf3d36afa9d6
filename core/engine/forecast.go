package engine

import (
	"sort"
	"time"

	"github.com/basetelco/revcast/schema"
)

// NameIndex maps normalized customer keys to the canonical customer-group
// identity they resolve to. It is built once per forecast call so activation
// matching is O(1) instead of a scan over all baseline keys.
type NameIndex struct {
	byKey map[string]string
}

// Collision records two differently spelled baseline customers whose names
// normalize to the same key. The first spelling wins in the index; the
// collision is surfaced to the caller as a data-quality warning instead of
// being silently merged.
type Collision struct {
	Key     string
	Kept    string
	Dropped string
}

// BuildNameIndex indexes the baseline customers by normalized name.
func BuildNameIndex(baseline map[string]float64) (*NameIndex, []Collision) {
	customers := make([]string, 0, len(baseline))
	for c := range baseline {
		customers = append(customers, c)
	}
	sort.Strings(customers) // deterministic first-match on collisions

	idx := &NameIndex{byKey: make(map[string]string, len(customers))}
	var collisions []Collision
	for _, c := range customers {
		key := Normalize(c)
		if kept, ok := idx.byKey[key]; ok {
			collisions = append(collisions, Collision{Key: key, Kept: kept, Dropped: c})
			continue
		}
		idx.byKey[key] = c
	}
	return idx, collisions
}

// Resolve returns the canonical customer for a normalized key.
func (ix *NameIndex) Resolve(key string) (string, bool) {
	c, ok := ix.byKey[key]
	return c, ok
}

// Forecast walks forward month by month from the last historical period and
// produces one row per (customer, period) with a positive projected value.
//
// Each period starts from a fresh copy of the baseline run-rates. Every
// activation then contributes additively: the pro-rated amount when its date
// falls inside the cursor month, the full monthly value when it activated in
// an earlier month, and nothing when it lies beyond the cursor. Activations
// whose normalized name misses the baseline open a new bucket keyed by the
// raw customer name. Zero-valued buckets are dropped from the output.
//
// Degenerate inputs yield degenerate but well-formed outputs: empty history
// or a zero horizon produce an empty slice, and empty activations flat-line
// the baseline across the horizon. Activations with a non-positive monthly
// value are ignored entirely.
func Forecast(history []schema.BillingRecord, activations []schema.ActivationRecord, horizonMonths int) []schema.ForecastRow {
	month, year, ok := LastPeriod(history)
	if !ok || horizonMonths <= 0 {
		return nil
	}

	baseline := ExtractBaseline(history)
	index, _ := BuildNameIndex(baseline)
	return forecastFrom(baseline, index, activations, month, year, horizonMonths)
}

// ForecastWithIndex is Forecast with a caller-built index, so executors can
// report name collisions once instead of rebuilding the index blindly.
func ForecastWithIndex(history []schema.BillingRecord, activations []schema.ActivationRecord, index *NameIndex, horizonMonths int) []schema.ForecastRow {
	month, year, ok := LastPeriod(history)
	if !ok || horizonMonths <= 0 {
		return nil
	}
	return forecastFrom(ExtractBaseline(history), index, activations, month, year, horizonMonths)
}

func forecastFrom(baseline map[string]float64, index *NameIndex, activations []schema.ActivationRecord, month, year, horizonMonths int) []schema.ForecastRow {
	var rows []schema.ForecastRow

	for i := 0; i < horizonMonths; i++ {
		month, year = schema.NextMonth(month, year)
		label := schema.PeriodLabel(month, year)
		monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		nextStart := monthStart.AddDate(0, 1, 0)

		// Fresh accumulator per period; baseline customers carry their flat
		// run-rate forward unconditionally.
		projected := make(map[string]float64, len(baseline))
		for customer, amount := range baseline {
			projected[customer] = amount
		}

		for _, act := range activations {
			if act.MonthlyValue <= 0 {
				continue
			}
			if !act.ExpectedDate.Before(nextStart) {
				continue // not yet relevant to this or any earlier period
			}

			var contribution float64
			switch {
			case !act.ExpectedDate.Before(monthStart):
				contribution = Prorate(act.ExpectedDate, act.MonthlyValue)
			default:
				contribution = act.MonthlyValue // ramped in by a prior period
			}

			key := act.NormalizedKey
			if key == "" {
				key = Normalize(act.Customer)
			}
			if customer, ok := index.Resolve(key); ok {
				projected[customer] += contribution
			} else {
				projected[act.Customer] += contribution
			}
		}

		customers := make([]string, 0, len(projected))
		for c := range projected {
			customers = append(customers, c)
		}
		sort.Strings(customers)

		for _, customer := range customers {
			value := projected[customer]
			if value <= 0 {
				continue
			}
			rows = append(rows, schema.ForecastRow{
				Customer: customer,
				Period:   label,
				Month:    month,
				Year:     year,
				Value:    value,
				Kind:     schema.ForecastKind,
			})
		}
	}
	return rows
}

// RealizedRows collapses history into one row per (customer, period) with
// the summed amount, tagged as realized. The realized periods of a customer
// are exactly the periods present for it in history.
func RealizedRows(history []schema.BillingRecord) []schema.ForecastRow {
	type bucket struct {
		customer string
		month    int
		year     int
	}
	sums := make(map[bucket]float64)
	for _, r := range history {
		sums[bucket{r.CustomerGroup, r.Month, r.Year}] += r.Amount
	}

	keys := make([]bucket, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return keys[i].customer < keys[j].customer
	})

	rows := make([]schema.ForecastRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, schema.ForecastRow{
			Customer: k.customer,
			Period:   schema.PeriodLabel(k.month, k.year),
			Month:    k.month,
			Year:     k.year,
			Value:    sums[k],
			Kind:     schema.RealizedKind,
		})
	}
	return rows
}
