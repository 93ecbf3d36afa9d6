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

// PrintMix outputs the product mix view, dispatching based on the configured
// output format.
func PrintMix(slices []schema.MixSlice, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printMixJSON(slices, cfg)
	case schema.CSVOut:
		return printMixCSV(slices, cfg)
	default:
		return printMixText(slices, cfg, duration)
	}
}

func printMixText(slices []schema.MixSlice, _ *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Serviço", "Faturamento", "Participação"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range slices {
		data = append(data, []string{s.ServiceType, FormatCurrency(s.Total), FormatPercent(s.Share)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d service types in %v\n", len(slices), duration.Round(time.Millisecond))
	return nil
}

func printMixCSV(slices []schema.MixSlice, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"service_type", "total", "share_pct"}); err != nil {
		return err
	}
	for _, s := range slices {
		record := []string{s.ServiceType, FormatValue(s.Total, cfg.Precision), FormatValue(s.Share, 1)}
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

func printMixJSON(slices []schema.MixSlice, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeIfNotStdout(file) }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(slices); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote JSON to %s\n", cfg.OutputFile)
	}
	return nil
}
