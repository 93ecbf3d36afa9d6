// Package outwriter has output and writer logic for the revcast views.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteForecast prints the month-by-month forecast table using the
// configured output format.
func (ow *OutWriter) WriteForecast(table *schema.ForecastTable, cfg *contract.Config, duration time.Duration) error {
	return PrintForecastTable(table, cfg, duration)
}

// WritePipeline prints the activation pipeline view.
func (ow *OutWriter) WritePipeline(stats schema.PipelineStats, cfg *contract.Config, duration time.Duration) error {
	return PrintPipeline(stats, cfg, duration)
}

// WriteMix prints the product mix view.
func (ow *OutWriter) WriteMix(slices []schema.MixSlice, cfg *contract.Config, duration time.Duration) error {
	return PrintMix(slices, cfg, duration)
}

// WriteConsolidated prints the consolidated projection view.
func (ow *OutWriter) WriteConsolidated(summary schema.ConsolidatedSummary, cfg *contract.Config, duration time.Duration) error {
	return PrintConsolidated(summary, cfg, duration)
}

// GetMaxCustomerWidth calculates the maximum width for customer names in
// table output based on terminal width and column count.
func GetMaxCustomerWidth(cfg *contract.Config, periodCount int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 120
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the period columns: currency cells plus borders
	available := termWidth - periodCount*16 - 10
	if available < 15 {
		return 15
	}
	if available > 45 {
		return 45
	}
	return available
}

// truncateName truncates a customer name to a maximum width with ellipsis.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
