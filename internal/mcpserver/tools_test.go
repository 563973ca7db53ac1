package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleSummary_Sample(t *testing.T) {
	res, _, err := handleSummary(context.Background(), nil, SummaryInput{Sample: true})
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, `"total_messages_analyzed": 12000`)
	assert.Contains(t, text, `"relevant_messages_found": 1315`)
	assert.Contains(t, text, `"sin"`)
}

func TestHandleSummary_MissingFilesFallsBackToSample(t *testing.T) {
	res, _, err := handleSummary(context.Background(), nil, SummaryInput{
		CSV:  "/nonexistent/records.csv",
		JSON: "/nonexistent/summary.json",
	})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), `"total_messages_analyzed": 12000`)
}

func TestHandleReport_MarkdownDefault(t *testing.T) {
	res, _, err := handleReport(context.Background(), nil, ReportInput{Sample: true})
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "# Content Analysis Report")
	assert.Contains(t, text, "## Key Findings")
}

func TestHandleReport_JSONFormat(t *testing.T) {
	res, _, err := handleReport(context.Background(), nil, ReportInput{Sample: true, Format: "json"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), `"analysis_summary"`)
}

func TestHandleReport_HTMLRejected(t *testing.T) {
	_, _, err := handleReport(context.Background(), nil, ReportInput{Sample: true, Format: "html"})
	assert.ErrorContains(t, err, "html")
}

func TestHandleReport_UnknownFormat(t *testing.T) {
	_, _, err := handleReport(context.Background(), nil, ReportInput{Sample: true, Format: "pdf"})
	assert.ErrorContains(t, err, "unknown format")
}

func TestNew_ServerConstructs(t *testing.T) {
	server := New("1.2.3")
	assert.NotNil(t, server)
}
