// ABOUTME: MCP subcommand for running the bloodpressure MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"context"

	"github.com/harper/bloodpressure/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the bloodpressure MCP server",
	Long:  `Start the Model Context Protocol server for AI assistants to record and report blood pressure readings over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		server := mcp.NewServer(s.Path())
		return server.Run(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
