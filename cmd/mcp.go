package cmd

import (
	"github.com/basetelco/revcast/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Revcast MCP server",
	Long:  `Launch an MCP server that allows AI agents to query revenue projections via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Loader warnings still go to stderr; stdout stays clean for the
		// protocol stream.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
