package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
)

// PrintConsolidated outputs the consolidated projection view, dispatching
// based on the configured output format.
func PrintConsolidated(summary schema.ConsolidatedSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printConsolidatedJSON(summary, cfg)
	case schema.CSVOut:
		return printConsolidatedCSV(summary, cfg)
	default:
		return printConsolidatedText(summary, cfg, duration)
	}
}

func printConsolidatedText(summary schema.ConsolidatedSummary, cfg *contract.Config, duration time.Duration) error {
	fmt.Printf("Faturamento total: %s | Clientes ativos: %d | Ticket médio: %s\n",
		FormatCurrency(summary.TotalRevenue), summary.CustomerCount, FormatCurrency(summary.AverageTicket))
	growth := FormatPercent(summary.GrowthPct)
	if cfg.Color {
		switch {
		case summary.GrowthPct > 0:
			growth = contract.GrowthColor.Sprint(growth + " ↑")
		case summary.GrowthPct < 0:
			growth = contract.DeclineColor.Sprint(growth + " ↓")
		}
	}
	fmt.Printf("Último período: %s (%s, crescimento %s) | Próximo mês projetado: %s\n\n",
		summary.LastPeriod, FormatCurrency(summary.LastPeriodTotal), growth, FormatCurrency(summary.NextMonthTotal))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Período", "Faturamento", "Tipo"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, point := range summary.Series {
		kind := string(point.Kind)
		if cfg.Color {
			if point.Kind == schema.RealizedKind {
				kind = contract.RealizedColor.Sprint(kind)
			} else {
				kind = contract.ForecastColor.Sprint(kind)
			}
		}
		data = append(data, []string{point.Period, FormatCurrency(point.Total), kind})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d periods in %v\n", len(summary.Series), duration.Round(time.Millisecond))
	return nil
}

func printConsolidatedCSV(summary schema.ConsolidatedSummary, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"period", "month", "year", "total", "kind"}); err != nil {
		return err
	}
	for _, point := range summary.Series {
		record := []string{
			point.Period,
			fmt.Sprintf("%d", point.Month),
			fmt.Sprintf("%d", point.Year),
			FormatValue(point.Total, cfg.Precision),
			string(point.Kind),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote CSV to %s\n", cfg.OutputFile)
	}
	return nil
}

func printConsolidatedJSON(summary schema.ConsolidatedSummary, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote JSON to %s\n", cfg.OutputFile)
	}
	return nil
}
