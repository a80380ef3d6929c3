// ABOUTME: MCP tool implementations for bloodpressure
// ABOUTME: Provides tools for recording and reporting readings
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harper/bloodpressure/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadingData is the wire representation of a reading.
type ReadingData struct {
	Timestamp string `json:"timestamp" jsonschema:"When the reading was taken (RFC 3339)"`
	Systolic  uint32 `json:"systolic" jsonschema:"Systolic pressure in mmHg"`
	Diastolic uint32 `json:"diastolic" jsonschema:"Diastolic pressure in mmHg"`
	Pulse     uint32 `json:"pulse" jsonschema:"Pulse in beats per minute"`
}

// RecordReadingInput defines the input for the record_reading tool.
type RecordReadingInput struct {
	Systolic  uint32 `json:"systolic" jsonschema:"Systolic pressure in mmHg" jsonschema_extras:"required=true"`
	Diastolic uint32 `json:"diastolic" jsonschema:"Diastolic pressure in mmHg" jsonschema_extras:"required=true"`
	Pulse     uint32 `json:"pulse" jsonschema:"Pulse in beats per minute" jsonschema_extras:"required=true"`
}

// RecordReadingOutput defines the output for the record_reading tool.
type RecordReadingOutput struct {
	Reading ReadingData `json:"reading" jsonschema:"The recorded reading"`
}

// ReportReadingsInput defines the input for the report_readings tool.
type ReportReadingsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of readings to return (default 10)"`
}

// ReportReadingsOutput defines the output for the report_readings tool.
type ReportReadingsOutput struct {
	Readings []ReadingData `json:"readings" jsonschema:"Readings, most recent first"`
	Count    int           `json:"count" jsonschema:"Number of readings returned"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	recordTool := &mcp.Tool{
		Name:        "record_reading",
		Description: "Record a blood pressure and pulse reading with the current time. Use this when the user reports a new measurement.",
	}
	mcp.AddTool(s.mcpServer, recordTool, s.handleRecordReading)

	reportTool := &mcp.Tool{
		Name:        "report_readings",
		Description: "Report the most recent blood pressure readings, newest first. Use this when the user asks about their recent readings or trends.",
	}
	mcp.AddTool(s.mcpServer, reportTool, s.handleReportReadings)
}

// handleRecordReading implements the record_reading tool.
func (s *Server) handleRecordReading(ctx context.Context, req *mcp.CallToolRequest, input RecordReadingInput) (*mcp.CallToolResult, RecordReadingOutput, error) {
	st := store.New(s.dataPath)

	r := store.NewReading(input.Systolic, input.Diastolic, input.Pulse)
	if err := st.Append(r); err != nil {
		return nil, RecordReadingOutput{}, fmt.Errorf("failed to record reading: %w", err)
	}

	output := RecordReadingOutput{Reading: toReadingData(r)}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Recorded BP %d/%d, pulse %d at %s",
					r.Systolic, r.Diastolic, r.Pulse, output.Reading.Timestamp),
			},
		},
	}

	return result, output, nil
}

// handleReportReadings implements the report_readings tool.
func (s *Server) handleReportReadings(ctx context.Context, req *mcp.CallToolRequest, input ReportReadingsInput) (*mcp.CallToolResult, ReportReadingsOutput, error) {
	st := store.New(s.dataPath)

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	readings, err := st.Report(limit)
	if err != nil {
		return nil, ReportReadingsOutput{}, fmt.Errorf("failed to report readings: %w", err)
	}

	output := ReportReadingsOutput{
		Readings: make([]ReadingData, 0, len(readings)),
		Count:    len(readings),
	}
	text := ""
	for _, r := range readings {
		output.Readings = append(output.Readings, toReadingData(r))
		text += r.String() + "\n"
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}

	return result, output, nil
}

func toReadingData(r store.Reading) ReadingData {
	return ReadingData{
		Timestamp: r.Timestamp.Format(time.RFC3339),
		Systolic:  r.Systolic,
		Diastolic: r.Diastolic,
		Pulse:     r.Pulse,
	}
}
