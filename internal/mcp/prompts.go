// ABOUTME: MCP prompt definitions for bloodpressure
// ABOUTME: Provides static context to AI assistants about the tracker
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "bloodpressure-getting-started",
		Description: "Introduction to the blood pressure tracker and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := `Bloodpressure is a personal health tracker that records timestamped blood pressure and pulse readings.

When to use it:
- User reports a new measurement ("my blood pressure was 120 over 80, pulse 60")
- User asks about recent readings or trends
- User wants to know when their last reading was taken

Best practices:
- Record readings as soon as the user reports them
- Readings are timestamped with the current time; there is no backdating
- Use report_readings to answer questions about past measurements

Readings are stored locally in a flat CSV file; nothing leaves the machine.`

		result := &mcp.GetPromptResult{
			Description: "Getting started with the blood pressure tracker",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: content,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
