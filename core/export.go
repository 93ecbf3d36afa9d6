package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/internal/outwriter"
	"github.com/basetelco/revcast/internal/parquet"
)

// ExecuteExport writes the forecast table and the activation pipeline to
// Parquet files for use with analytics tools. It serves as the main entry
// point for the 'export' command.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	table, err := GetForecastResults(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build forecast: %w", err)
	}

	stats, err := GetPipelineResults(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	forecastRows := parquet.ConvertForecastRows(outwriter.FlattenForecast(table))
	pipelineRows := parquet.ConvertPipelineItems(stats.Items)

	forecastFile := cfg.OutputFile + ".forecast.parquet"
	if err := parquet.WriteForecastParquet(forecastRows, forecastFile); err != nil {
		return fmt.Errorf("failed to write forecast rows: %w", err)
	}
	fmt.Printf("Exported %d forecast rows to: %s\n", len(forecastRows), forecastFile)

	pipelineFile := cfg.OutputFile + ".pipeline.parquet"
	if err := parquet.WritePipelineParquet(pipelineRows, pipelineFile); err != nil {
		return fmt.Errorf("failed to write pipeline rows: %w", err)
	}
	fmt.Printf("Exported %d pipeline rows to: %s\n", len(pipelineRows), pipelineFile)

	return nil
}
