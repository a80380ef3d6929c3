// ABOUTME: MCP server implementation for bloodpressure
// ABOUTME: Provides tools and resources for AI assistants to record and report readings
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with bloodpressure-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	dataPath  string
}

// NewServer creates a new bloodpressure MCP server over the backing
// file at dataPath.
func NewServer(dataPath string) *Server {
	impl := &mcp.Implementation{
		Name:    "bloodpressure",
		Version: "0.1.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		dataPath:  dataPath,
	}

	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
