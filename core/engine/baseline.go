package engine

import "github.com/basetelco/revcast/schema"

// LastPeriod returns the maximum (year, month) pair present in history.
// The second return value is false when history is empty.
func LastPeriod(history []schema.BillingRecord) (month, year int, ok bool) {
	for _, r := range history {
		if !ok || r.Year > year || (r.Year == year && r.Month > month) {
			month, year = r.Month, r.Year
			ok = true
		}
	}
	return month, year, ok
}

// ExtractBaseline derives each customer's current run-rate: the summed
// amount of the most recent (year, month) in history, per customer group.
// The baseline is held flat for all future periods unless an activation
// contributes on top of it. Empty history yields an empty map.
func ExtractBaseline(history []schema.BillingRecord) map[string]float64 {
	month, year, ok := LastPeriod(history)
	if !ok {
		return map[string]float64{}
	}

	baseline := make(map[string]float64)
	for _, r := range history {
		if r.Month == month && r.Year == year {
			baseline[r.CustomerGroup] += r.Amount
		}
	}
	return baseline
}
