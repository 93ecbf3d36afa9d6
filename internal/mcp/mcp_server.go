// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/basetelco/revcast/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Revcast MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Revcast Revenue Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_forecast ---
	s.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Project monthly recurring revenue per customer over a future horizon, combining billing history with pending activations."),
		mcp.WithNumber("horizon", mcp.Description("Number of future months to project. Defaults to the configured horizon.")),
		mcp.WithNumber("top", mcp.Description("Limit the number of customers in the result.")),
	), h.handleGetForecast)

	// --- 2. Tool: get_pipeline ---
	s.AddTool(mcp.NewTool("get_pipeline",
		mcp.WithDescription("Summarize the pending activation pipeline: totals, average ticket, upcoming activations and next-month revenue increment."),
		mcp.WithString("customer", mcp.Description("Filter activations by customer name.")),
		mcp.WithString("product", mcp.Description("Filter activations by product name.")),
		mcp.WithString("status", mcp.Description("Filter activations by pipeline status.")),
	), h.handleGetPipeline)

	// --- 3. Tool: get_product_mix ---
	s.AddTool(mcp.NewTool("get_product_mix",
		mcp.WithDescription("Break historical revenue down by service type with each type's share of the total."),
	), h.handleGetProductMix)

	// --- 4. Tool: get_consolidated ---
	s.AddTool(mcp.NewTool("get_consolidated",
		mcp.WithDescription("Return the consolidated revenue summary: total revenue, customer count, average ticket, period-over-period growth and the projected series."),
		mcp.WithNumber("horizon", mcp.Description("Number of future months to project. Defaults to the configured horizon.")),
	), h.handleGetConsolidated)

	return s
}

// StartMCPServer starts the Revcast MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
