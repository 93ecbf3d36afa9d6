// Package core has core logic for loading datasets, projecting revenue and
// rendering the analytic views.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/basetelco/revcast/core/agg"
	"github.com/basetelco/revcast/core/engine"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/internal/outwriter"
	"github.com/basetelco/revcast/internal/snapcache"
	"github.com/basetelco/revcast/internal/source"
	"github.com/basetelco/revcast/schema"
)

// ExecutorFunc defines the function signature for executing different views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteForecast runs the revenue projection and prints the pivoted
// customer-by-period table. It serves as the main entry point for the
// 'forecast' command.
func ExecuteForecast(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	table, err := GetForecastResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteForecast(table, cfg, duration)
}

// ExecutePipeline summarizes the pending activation pipeline and prints it.
// It serves as the main entry point for the 'pipeline' command.
func ExecutePipeline(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	stats, err := GetPipelineResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WritePipeline(stats, cfg, duration)
}

// ExecuteMix aggregates historical revenue by service type and prints the
// share breakdown. It serves as the main entry point for the 'mix' command.
func ExecuteMix(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	slices, err := GetMixResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteMix(slices, cfg, duration)
}

// ExecuteConsolidated combines the historical series with the projection
// into the headline revenue summary. It serves as the main entry point for
// the 'consolidated' command.
func ExecuteConsolidated(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	summary, err := GetConsolidatedResults(ctx, cfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteConsolidated(summary, cfg, duration)
}

// GetForecastResults loads the datasets, projects revenue over the
// configured horizon and pivots the result into the forecast table.
// This is the shared entry point for the CLI and the MCP server.
func GetForecastResults(ctx context.Context, cfg *contract.Config) (*schema.ForecastTable, error) {
	history, activations, err := loadDatasets(ctx, cfg)
	if err != nil {
		return nil, err
	}

	baseline := engine.ExtractBaseline(history.Records)
	index, collisions := engine.BuildNameIndex(baseline)
	for _, c := range collisions {
		contract.LogWarn(fmt.Sprintf("normalized name %q matches both %q and %q; keeping %q",
			c.Key, c.Kept, c.Dropped, c.Kept))
	}

	forecast := engine.ForecastWithIndex(history.Records, activations.Records, index, cfg.HorizonMonths)
	realized := engine.RealizedRows(history.Records)
	top := agg.TopCustomers(history.Records, cfg.TopLimit)
	return agg.BuildForecastTable(realized, forecast, top), nil
}

// GetPipelineResults loads the activation pipeline and summarizes it with
// the configured filters applied.
func GetPipelineResults(ctx context.Context, cfg *contract.Config) (schema.PipelineStats, error) {
	_, activations, err := loadDatasets(ctx, cfg)
	if err != nil {
		return schema.PipelineStats{}, err
	}

	filter := agg.PipelineFilter{
		Customer: cfg.FilterCustomer,
		Product:  cfg.FilterProduct,
		Status:   cfg.FilterStatus,
	}
	return agg.BuildPipelineStats(activations.Records, cfg.Now, filter), nil
}

// GetMixResults loads the billing history and aggregates revenue by
// service type.
func GetMixResults(ctx context.Context, cfg *contract.Config) ([]schema.MixSlice, error) {
	history, _, err := loadDatasets(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return agg.BuildProductMix(history.Records), nil
}

// GetConsolidatedResults loads both datasets and folds the projection into
// the consolidated revenue summary.
func GetConsolidatedResults(ctx context.Context, cfg *contract.Config) (schema.ConsolidatedSummary, error) {
	history, activations, err := loadDatasets(ctx, cfg)
	if err != nil {
		return schema.ConsolidatedSummary{}, err
	}

	forecast := engine.Forecast(history.Records, activations.Records, cfg.HorizonMonths)
	return agg.BuildConsolidated(history.Records, forecast), nil
}

// loadDatasets builds the configured data source, layers the activation
// snapshot cache on top when a store is available, and loads both tables.
// Loader warnings surface on stderr; only source construction can fail.
func loadDatasets(ctx context.Context, cfg *contract.Config) (schema.HistoryTable, schema.ActivationTable, error) {
	ds, err := source.NewDataSource(cfg)
	if err != nil {
		return schema.HistoryTable{}, schema.ActivationTable{}, err
	}

	history, warnings := ds.LoadHistory(ctx)
	for _, w := range warnings {
		contract.LogWarn(w)
	}

	var actSource contract.ActivationSource = ds
	if store := snapcache.Manager.GetActivationStore(); store != nil {
		actSource = source.NewCachedActivationSource(ds, store, snapshotKey(cfg), cfg.SnapshotTTL)
	}
	activations, warnings := actSource.LoadActivations(ctx)
	for _, w := range warnings {
		contract.LogWarn(w)
	}

	return history, activations, nil
}

// snapshotKey identifies the underlying activation source so distinct
// sources never share snapshots.
func snapshotKey(cfg *contract.Config) string {
	if cfg.Source == schema.DatabaseSource {
		return fmt.Sprintf("db:%s:%s", cfg.SourceBackend, cfg.SourceConnect)
	}
	return "csv:" + cfg.ActivationsFile
}
