package engine

import (
	"testing"

	"github.com/basetelco/revcast/schema"
	"github.com/stretchr/testify/assert"
)

// TestLastPeriod verifies the maximum (year, month) detection.
func TestLastPeriod(t *testing.T) {
	tests := []struct {
		name      string
		history   []schema.BillingRecord
		wantMonth int
		wantYear  int
		wantOK    bool
	}{
		{
			name:    "empty history",
			history: nil,
			wantOK:  false,
		},
		{
			name: "single record",
			history: []schema.BillingRecord{
				{CustomerGroup: "A", Amount: 10, Month: 3, Year: 2026},
			},
			wantMonth: 3, wantYear: 2026, wantOK: true,
		},
		{
			name: "year beats month",
			history: []schema.BillingRecord{
				{CustomerGroup: "A", Amount: 10, Month: 12, Year: 2025},
				{CustomerGroup: "A", Amount: 10, Month: 1, Year: 2026},
			},
			wantMonth: 1, wantYear: 2026, wantOK: true,
		},
		{
			name: "unordered input",
			history: []schema.BillingRecord{
				{CustomerGroup: "A", Amount: 10, Month: 5, Year: 2026},
				{CustomerGroup: "B", Amount: 10, Month: 2, Year: 2026},
				{CustomerGroup: "C", Amount: 10, Month: 4, Year: 2026},
			},
			wantMonth: 5, wantYear: 2026, wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year, ok := LastPeriod(tt.history)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMonth, month)
				assert.Equal(t, tt.wantYear, year)
			}
		})
	}
}

// TestExtractBaseline verifies per-customer sums over the latest month only.
func TestExtractBaseline(t *testing.T) {
	history := []schema.BillingRecord{
		{CustomerGroup: "ACME", ServiceType: "TOIP", Amount: 1000, Month: 5, Year: 2026},
		{CustomerGroup: "ACME", ServiceType: "IP", Amount: 500, Month: 6, Year: 2026},
		{CustomerGroup: "ACME", ServiceType: "TOIP", Amount: 1100, Month: 6, Year: 2026},
		{CustomerGroup: "BRAVO", ServiceType: "VIDEO", Amount: 700, Month: 6, Year: 2026},
		{CustomerGroup: "STALE", ServiceType: "TOIP", Amount: 900, Month: 4, Year: 2026},
	}

	baseline := ExtractBaseline(history)

	assert.Len(t, baseline, 2)
	assert.InDelta(t, 1600, baseline["ACME"], 0.0001) // 500 + 1100 in the last month
	assert.InDelta(t, 700, baseline["BRAVO"], 0.0001)
	assert.NotContains(t, baseline, "STALE") // churned before the last month
}

// TestExtractBaselineEmpty ensures empty history yields an empty map.
func TestExtractBaselineEmpty(t *testing.T) {
	baseline := ExtractBaseline(nil)
	assert.NotNil(t, baseline)
	assert.Empty(t, baseline)
}
