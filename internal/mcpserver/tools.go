package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/output"
)

// SummaryInput is the input schema for the panorama summary MCP tool.
type SummaryInput struct {
	CSV    string `json:"csv,omitempty" jsonschema:"Path to the per-message records CSV (defaults to the standard search locations)"`
	JSON   string `json:"json,omitempty" jsonschema:"Path to the analysis summary JSON (defaults to the standard search locations)"`
	Sample bool   `json:"sample,omitempty" jsonschema:"Use the synthetic demo dataset instead of reading files"`
}

// ReportInput is the input schema for the panorama report MCP tool.
type ReportInput struct {
	CSV    string `json:"csv,omitempty" jsonschema:"Path to the per-message records CSV (defaults to the standard search locations)"`
	JSON   string `json:"json,omitempty" jsonschema:"Path to the analysis summary JSON (defaults to the standard search locations)"`
	Format string `json:"format,omitempty" jsonschema:"Report format: json, markdown, text (default: markdown)"`
	Sample bool   `json:"sample,omitempty" jsonschema:"Use the synthetic demo dataset instead of reading files"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all panorama tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summary",
		Description: "Return the aggregate content-analysis summary (categories, intensity, markers, engagement) as JSON.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Render a full content-analysis report in the requested format (json, markdown, or text).",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleReport)
}

func handleSummary(_ context.Context, _ *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, any, error) {
	snap, err := loadSnapshot(input.CSV, input.JSON, input.Sample)
	if err != nil {
		return nil, nil, err
	}

	data, err := json.MarshalIndent(snap.Summary, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal summary: %w", err)
	}

	return textResult(string(data)), nil, nil
}

func handleReport(_ context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = "markdown"
	}
	if format == "html" {
		return nil, nil, fmt.Errorf("format html is too large for tool output; use json, markdown, or text")
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, err
	}

	snap, err := loadSnapshot(input.CSV, input.JSON, input.Sample)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(snap, &buf); err != nil {
		return nil, nil, fmt.Errorf("render report: %w", err)
	}

	return textResult(buf.String()), nil, nil
}

// loadSnapshot resolves the inputs the same way the CLI does: explicit
// paths, then the default search locations, with the synthetic dataset on
// request or when nothing is readable.
func loadSnapshot(csvPath, jsonPath string, sample bool) (*dataset.Snapshot, error) {
	if sample {
		return dataset.Sample(), nil
	}

	if csvPath == "" || jsonPath == "" {
		defCSV, defJSON := dataset.DefaultPaths(".")
		if csvPath == "" {
			csvPath = defCSV
		}
		if jsonPath == "" {
			jsonPath = defJSON
		}
	}

	snap, err := dataset.Load(csvPath, jsonPath)
	if err != nil {
		return dataset.Sample(), nil
	}
	return snap, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
