package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/basetelco/revcast/core"
	"github.com/basetelco/revcast/internal/contract"
	"github.com/basetelco/revcast/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// forecastPayload is the JSON shape returned by the get_forecast tool.
// The pivoted table's maps are flattened into ordered rows so the result
// reads naturally without knowing the internal cell layout.
type forecastPayload struct {
	Periods   []string           `json:"periods"`
	Customers []forecastCustomer `json:"customers"`
	Totals    map[string]float64 `json:"totals"`
}

type forecastCustomer struct {
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
}

func tableToPayload(table *schema.ForecastTable) forecastPayload {
	payload := forecastPayload{
		Periods: table.Periods,
		Totals:  table.Totals,
	}
	for _, customer := range table.Customers {
		payload.Customers = append(payload.Customers, forecastCustomer{
			Name:   customer,
			Values: table.Cells[customer],
		})
	}
	return payload
}

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleGetForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if horizon := request.GetInt("horizon", 0); horizon > 0 && horizon <= contract.MaxHorizonMonths {
		cfg.HorizonMonths = horizon
	}
	if top := request.GetInt("top", 0); top > 0 && top <= contract.MaxTopLimit {
		cfg.TopLimit = top
	}

	table, err := core.GetForecastResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(tableToPayload(table), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPipeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("customer", ""); c != "" {
		cfg.FilterCustomer = c
	}
	if p := request.GetString("product", ""); p != "" {
		cfg.FilterProduct = p
	}
	if s := request.GetString("status", ""); s != "" {
		cfg.FilterStatus = s
	}

	stats, err := core.GetPipelineResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pipeline summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetProductMix(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	slices, err := core.GetMixResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("product mix failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(slices, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetConsolidated(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if horizon := request.GetInt("horizon", 0); horizon > 0 && horizon <= contract.MaxHorizonMonths {
		cfg.HorizonMonths = horizon
	}

	summary, err := core.GetConsolidatedResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("consolidated summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
