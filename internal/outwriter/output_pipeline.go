package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/internal/parquet"
	"github.com/basetelco/revcast/schema"
)

// PrintPipeline outputs the activation pipeline view, dispatching based on
// the configured output format.
func PrintPipeline(stats schema.PipelineStats, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printPipelineJSON(stats, cfg)
	case schema.CSVOut:
		return printPipelineCSV(stats, cfg)
	case schema.ParquetOut:
		return printPipelineParquet(stats, cfg)
	default:
		return printPipelineText(stats, cfg, duration)
	}
}

func printPipelineText(stats schema.PipelineStats, cfg *contract.Config, duration time.Duration) error {
	fmt.Printf("Ativações em andamento: %d (MRR %s, ticket médio %s)\n",
		stats.Total, FormatCurrency(stats.TotalMRR), FormatCurrency(stats.AverageTicket))
	fmt.Printf("Próximos 30 dias: %d | %s: %d ativações, incremento %s\n\n",
		stats.DueWithin30Days, stats.NextMonthLabel, stats.NextMonthCount, FormatCurrency(stats.NextMonthIncrement))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Cliente", "Data Prevista", "MRR", "Produto", "Status", "Dias"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, item := range stats.Items {
		data = append(data, []string{
			truncateName(item.Record.Customer, 40),
			item.Record.ExpectedDate.Format("2006-01-02"),
			FormatCurrency(item.Record.MonthlyValue),
			item.Record.Product,
			item.Record.Status,
			strconv.Itoa(item.DaysToActivate),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d activations in %v\n", stats.Total, duration.Round(time.Millisecond))
	return nil
}

func printPipelineCSV(stats schema.PipelineStats, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"customer", "expected_date", "monthly_value", "product", "status", "days_to_activate"}); err != nil {
		return err
	}
	for _, item := range stats.Items {
		record := []string{
			item.Record.Customer,
			item.Record.ExpectedDate.Format("2006-01-02"),
			FormatValue(item.Record.MonthlyValue, cfg.Precision),
			item.Record.Product,
			item.Record.Status,
			strconv.Itoa(item.DaysToActivate),
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

func printPipelineJSON(stats schema.PipelineStats, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	type jsonItem struct {
		Customer       string  `json:"customer"`
		ExpectedDate   string  `json:"expected_date"`
		MonthlyValue   float64 `json:"monthly_value"`
		Product        string  `json:"product"`
		Status         string  `json:"status"`
		DaysToActivate int     `json:"days_to_activate"`
	}
	payload := struct {
		schema.PipelineStats
		Items []jsonItem `json:"items"`
	}{PipelineStats: stats}
	for _, item := range stats.Items {
		payload.Items = append(payload.Items, jsonItem{
			Customer:       item.Record.Customer,
			ExpectedDate:   item.Record.ExpectedDate.Format("2006-01-02"),
			MonthlyValue:   item.Record.MonthlyValue,
			Product:        item.Record.Product,
			Status:         item.Record.Status,
			DaysToActivate: item.DaysToActivate,
		})
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote JSON to %s\n", cfg.OutputFile)
	}
	return nil
}

func printPipelineParquet(stats schema.PipelineStats, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("output-file is required for parquet output")
	}
	rows := parquet.ConvertPipelineItems(stats.Items)
	if err := parquet.WritePipelineParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
