// ABOUTME: MCP resource implementations for bloodpressure
// ABOUTME: Provides queryable context about the user's recorded readings
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/bloodpressure/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	recentReadings := &mcp.Resource{
		URI:         "bloodpressure://recent-readings",
		Name:        "Recent Readings",
		Description: "Last 10 blood pressure readings, most recent first",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(recentReadings, s.handleRecentReadings)

	latestReading := &mcp.Resource{
		URI:         "bloodpressure://latest-reading",
		Name:        "Latest Reading",
		Description: "The single most recent blood pressure reading",
		MIMEType:    "text/plain",
	}
	s.mcpServer.AddResource(latestReading, s.handleLatestReading)
}

// handleRecentReadings implements the recent-readings resource.
func (s *Server) handleRecentReadings(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st := store.New(s.dataPath)

	readings, err := st.Report(10)
	if err != nil {
		return nil, fmt.Errorf("failed to report readings: %w", err)
	}

	data, err := json.MarshalIndent(readings, "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "bloodpressure://recent-readings",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}

// handleLatestReading implements the latest-reading resource.
func (s *Server) handleLatestReading(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	st := store.New(s.dataPath)

	readings, err := st.Report(1)
	if err != nil {
		return nil, fmt.Errorf("failed to report readings: %w", err)
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("no readings recorded")
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "bloodpressure://latest-reading",
				MIMEType: "text/plain",
				Text:     readings[0].String(),
			},
		},
	}

	return result, nil
}
