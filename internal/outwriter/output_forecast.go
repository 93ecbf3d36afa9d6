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
	"github.com/basetelco/revcast/internal/parquet"
	"github.com/basetelco/revcast/schema"
)

// PrintForecastTable outputs the forecast pivot, dispatching based on the
// configured output format.
func PrintForecastTable(table *schema.ForecastTable, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printForecastJSON(table, cfg)
	case schema.CSVOut:
		return printForecastCSV(table, cfg)
	case schema.ParquetOut:
		return printForecastParquet(table, cfg)
	default:
		return printForecastText(table, cfg, duration)
	}
}

// printForecastText prints the customer x period table. Forecast periods are
// marked with an asterisk in the header, matching the original dashboard.
func printForecastText(t *schema.ForecastTable, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Cliente"}
	for _, period := range t.Periods {
		if t.IsRealized(period) {
			headers = append(headers, period)
		} else {
			headers = append(headers, period+" *")
		}
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := GetMaxCustomerWidth(cfg, len(t.Periods))

	var data [][]string
	for _, customer := range t.Customers {
		row := []string{truncateName(customer, maxName)}
		for i, period := range t.Periods {
			cell := FormatCurrency(t.Value(customer, period))
			if cfg.Color && i > 0 {
				delta := t.Value(customer, period) - t.Value(customer, t.Periods[i-1])
				if marker := contract.GetColorTrendMarker(delta); marker != "" {
					cell += " " + marker
				}
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	totals := []string{"TOTAL"}
	for _, period := range t.Periods {
		totals = append(totals, FormatCurrency(t.Totals[period]))
	}
	data = append(data, totals)

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d customers, %d periods (* projected) in %v\n", len(t.Customers), len(t.Periods), duration.Round(time.Millisecond))
	return nil
}

// printForecastCSV writes one row per (customer, period) cell.
func printForecastCSV(t *schema.ForecastTable, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"customer", "period", "month", "year", "value", "kind"}); err != nil {
		return err
	}
	for _, row := range FlattenForecast(t) {
		record := []string{
			row.Customer,
			row.Period,
			fmt.Sprintf("%d", row.Month),
			fmt.Sprintf("%d", row.Year),
			FormatValue(row.Value, cfg.Precision),
			string(row.Kind),
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

// printForecastJSON writes the flattened cell list as a JSON array.
func printForecastJSON(t *schema.ForecastTable, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FlattenForecast(t)); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote JSON to %s\n", cfg.OutputFile)
	}
	return nil
}

// printForecastParquet writes the flattened cells to a Parquet file.
func printForecastParquet(t *schema.ForecastTable, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("output-file is required for parquet output")
	}
	rows := parquet.ConvertForecastRows(FlattenForecast(t))
	if err := parquet.WriteForecastParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// FlattenForecast turns the pivot back into the engine's row contract, in
// table order. The machine-readable writers and the export command share it.
func FlattenForecast(t *schema.ForecastTable) []schema.ForecastRow {
	var rows []schema.ForecastRow
	for _, customer := range t.Customers {
		for _, period := range t.Periods {
			value := t.Value(customer, period)
			if value == 0 {
				continue
			}
			month, year := schema.ParsePeriod(period)
			kind := schema.ForecastKind
			if t.IsRealized(period) {
				kind = schema.RealizedKind
			}
			rows = append(rows, schema.ForecastRow{
				Customer: customer,
				Period:   period,
				Month:    month,
				Year:     year,
				Value:    value,
				Kind:     kind,
			})
		}
	}
	return rows
}

// closeIfNotStdout closes a file handle unless it is process stdout.
func closeIfNotStdout(file *os.File) error {
	if file == os.Stdout {
		return nil
	}
	return file.Close()
}
