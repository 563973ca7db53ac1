package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/llm"
)

func TestStatic_FiveFindings(t *testing.T) {
	findings := Static()
	require.Len(t, findings, 5)
	for _, f := range findings {
		assert.NotEmpty(t, f.Title)
		assert.NotEmpty(t, f.Detail)
	}
}

func TestGenerate_ParsesModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "- Dominant theme: religious framing leads all categories.\n" +
			"- Low escalation: almost everything sits at level 1.\n" +
			"High reach without a title segment that fits, because this line has no colon prefix short enough to count as a heading given its length\n",
	})

	snap := dataset.Sample()
	findings, err := Generate(context.Background(), mock, snap.Summary)
	require.NoError(t, err)
	require.Len(t, findings, 3)

	assert.Equal(t, "Dominant theme", findings[0].Title)
	assert.Equal(t, "religious framing leads all categories.", findings[0].Detail)
	assert.Equal(t, "Low escalation", findings[1].Title)
	assert.Empty(t, findings[2].Title, "lines without a heading keep everything in the detail")
}

func TestGenerate_PromptCarriesSummaryNumbers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "- A: b"})

	snap := dataset.Sample()
	_, err := Generate(context.Background(), mock, snap.Summary)
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	prompt := calls[0].Prompt
	assert.Contains(t, prompt, "Messages analyzed: 12000")
	assert.Contains(t, prompt, "Relevant messages: 1315 (10.96%)")
	assert.Contains(t, prompt, "sin=977")
	assert.NotEmpty(t, calls[0].SystemPrompt)
}

func TestGenerate_CapsAtFiveFindings(t *testing.T) {
	lines := make([]string, 8)
	for i := range lines {
		lines[i] = "- Point: detail"
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: strings.Join(lines, "\n")})

	findings, err := Generate(context.Background(), mock, dataset.Sample().Summary)
	require.NoError(t, err)
	assert.Len(t, findings, 5)
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})

	findings, err := Generate(context.Background(), mock, dataset.Sample().Summary)
	assert.Error(t, err)
	assert.Nil(t, findings)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "  \n\n"})

	_, err := Generate(context.Background(), mock, dataset.Sample().Summary)
	assert.ErrorContains(t, err, "no parseable findings")
}

func TestGenerate_NilSummary(t *testing.T) {
	mock := llm.NewMockProvider()

	_, err := Generate(context.Background(), mock, nil)
	assert.Error(t, err)
	assert.Empty(t, mock.Calls(), "no request is sent without a summary")
}
