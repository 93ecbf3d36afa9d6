// Package parquet provides data structures and functions for exporting
// revenue forecast data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/basetelco/revcast/schema"
	"github.com/parquet-go/parquet-go"
)

// ForecastRow represents a single customer/period revenue row.
// Columns mirror the CSV and JSON export layouts.
type ForecastRow struct {
	// Customer is the display name of the customer group
	Customer string `parquet:"customer,snappy"`

	// Period is the Portuguese period label, e.g. "JANEIRO/2026"
	Period string `parquet:"period,snappy"`

	// Month is the calendar month number (1-12)
	Month int32 `parquet:"month,snappy"`

	// Year is the calendar year
	Year int32 `parquet:"year,snappy"`

	// Value is the revenue for the period in BRL
	Value float64 `parquet:"value,snappy"`

	// Kind marks the row as realized or forecast revenue
	Kind string `parquet:"kind,snappy"`
}

// PipelineRow represents a single pending activation in the sales pipeline.
type PipelineRow struct {
	// Customer is the display name on the activation record
	Customer string `parquet:"customer,snappy"`

	// ExpectedDate is the planned activation date (nullable when unknown)
	ExpectedDate *time.Time `parquet:"expected_date,optional,snappy"`

	// MonthlyValue is the contracted monthly recurring revenue in BRL
	MonthlyValue float64 `parquet:"monthly_value,snappy"`

	// Product is the contracted product or service name (nullable)
	Product *string `parquet:"product,optional,snappy"`

	// Status is the pipeline status of the activation (nullable)
	Status *string `parquet:"status,optional,snappy"`

	// DaysUntil is the number of days until the expected date (nullable)
	DaysUntil *int32 `parquet:"days_until,optional,snappy"`
}

// WriteForecastParquet writes forecast rows to a Parquet file.
func WriteForecastParquet(data []ForecastRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the ForecastRow struct tags
	writer := parquet.NewGenericWriter[ForecastRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WritePipelineParquet writes pipeline rows to a Parquet file.
func WritePipelineParquet(data []PipelineRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[PipelineRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertForecastRows converts schema.ForecastRow to ForecastRow for Parquet export.
func ConvertForecastRows(rows []schema.ForecastRow) []ForecastRow {
	result := make([]ForecastRow, len(rows))
	for i, row := range rows {
		result[i] = ForecastRow{
			Customer: row.Customer,
			Period:   row.Period,
			Month:    int32(row.Month),
			Year:     int32(row.Year),
			Value:    row.Value,
			Kind:     string(row.Kind),
		}
	}
	return result
}

// ConvertPipelineItems converts schema.PipelineItem to PipelineRow for Parquet export.
func ConvertPipelineItems(items []schema.PipelineItem) []PipelineRow {
	result := make([]PipelineRow, len(items))
	for i, item := range items {
		row := PipelineRow{
			Customer:     item.Record.Customer,
			MonthlyValue: item.Record.MonthlyValue,
		}
		if !item.Record.ExpectedDate.IsZero() {
			date := item.Record.ExpectedDate
			row.ExpectedDate = &date
			days := int32(item.DaysToActivate)
			row.DaysUntil = &days
		}
		if item.Record.Product != "" {
			product := item.Record.Product
			row.Product = &product
		}
		if item.Record.Status != "" {
			status := item.Record.Status
			row.Status = &status
		}
		result[i] = row
	}
	return result
}
