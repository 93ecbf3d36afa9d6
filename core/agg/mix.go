package agg

import (
	"sort"

	"github.com/basetelco/revcast/schema"
)

// BuildProductMix groups historical revenue by service type and computes the
// percentage share of each, ordered by revenue descending.
func BuildProductMix(history []schema.BillingRecord) []schema.MixSlice {
	totals := make(map[string]float64)
	var overall float64
	for _, r := range history {
		totals[r.ServiceType] += r.Amount
		overall += r.Amount
	}

	slices := make([]schema.MixSlice, 0, len(totals))
	for service, total := range totals {
		slice := schema.MixSlice{ServiceType: service, Total: total}
		if overall != 0 {
			slice.Share = total / overall * 100
		}
		slices = append(slices, slice)
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Total != slices[j].Total {
			return slices[i].Total > slices[j].Total
		}
		return slices[i].ServiceType < slices[j].ServiceType
	})
	return slices
}
