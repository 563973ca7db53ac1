// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Message_ID,Text_Preview,Categories,Subcategories,Intensity_Score,Views,Forwards,Date,Has_Media
msg_0001,Some preview...,Cat A,1.sub_a,1,1200,3,2025-03-14,True
msg_0002,Another preview...,Cat B,2.sub_b,2,89000,0,2025-03-15 08:30:00,False
`

const sampleJSON = `{
  "analysis_summary": {
    "total_messages_analyzed": 12000,
    "relevant_messages_found": 1315,
    "relevance_rate": 10.96
  },
  "category_distribution": {"Cat A": 3, "Cat B": 1},
  "content_with_media": 700
}`

// writeInputs writes a CSV/JSON pair into dir and returns their paths.
func writeInputs(t *testing.T, dir, csvData, jsonData string) (string, string) {
	t.Helper()
	csvPath := filepath.Join(dir, recordsFileName)
	jsonPath := filepath.Join(dir, summaryFileName)
	require.NoError(t, os.WriteFile(csvPath, []byte(csvData), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonData), 0o644))
	return csvPath, jsonPath
}

func TestLoad_RoundTrip(t *testing.T) {
	csvPath, jsonPath := writeInputs(t, t.TempDir(), sampleCSV, sampleJSON)

	snap, err := Load(csvPath, jsonPath)
	require.NoError(t, err)
	require.Len(t, snap.Records, 2)

	first := snap.Records[0]
	assert.Equal(t, "msg_0001", first.MessageID)
	assert.Equal(t, "Cat A", first.Category)
	assert.Equal(t, "1.sub_a", first.Subcategory)
	assert.Equal(t, 1, first.Intensity)
	assert.Equal(t, 1200, first.Views)
	assert.Equal(t, 3, first.Forwards)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), first.Date)
	assert.True(t, first.HasMedia)
	assert.False(t, snap.Records[1].HasMedia)

	require.NotNil(t, snap.Summary)
	assert.Equal(t, 12000, snap.Summary.Overview.TotalMessages)
	assert.Equal(t, 1315, snap.Summary.Overview.RelevantMessages)
	assert.InDelta(t, 10.96, snap.Summary.Overview.RelevanceRate, 0.001)
	assert.Equal(t, 700, snap.Summary.ContentWithMedia)
	assert.Equal(t, 4, Total(snap.Summary.Categories))
}

func TestLoad_MissingCSV(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, summaryFileName)
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0o644))

	snap, err := Load(filepath.Join(dir, "nope.csv"), jsonPath)
	assert.Nil(t, snap)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, InputCSV, le.Input)
}

func TestLoad_MalformedJSON(t *testing.T) {
	csvPath, jsonPath := writeInputs(t, t.TempDir(), sampleCSV, "{not json")

	snap, err := Load(csvPath, jsonPath)
	assert.Nil(t, snap, "no partial success: CSV alone must not produce a snapshot")

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, InputJSON, le.Input)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	csvData := "Message_ID,Text_Preview,Categories\nmsg_1,x,Cat A\n"
	csvPath, jsonPath := writeInputs(t, t.TempDir(), csvData, sampleJSON)

	_, err := Load(csvPath, jsonPath)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, InputCSV, le.Input)
	assert.Contains(t, le.Error(), "Subcategories")
}

func TestLoad_MalformedRow(t *testing.T) {
	csvData := `Message_ID,Text_Preview,Categories,Subcategories,Intensity_Score,Views,Forwards,Date
msg_1,x,Cat A,1.sub,1,not-a-number,0,2025-01-01
`
	csvPath, jsonPath := writeInputs(t, t.TempDir(), csvData, sampleJSON)

	_, err := Load(csvPath, jsonPath)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, InputCSV, le.Input)
}

func TestLoad_MissingAnalysisSummary(t *testing.T) {
	csvPath, jsonPath := writeInputs(t, t.TempDir(), sampleCSV, `{"category_distribution": {"A": 1}}`)

	_, err := Load(csvPath, jsonPath)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, InputJSON, le.Input)
	assert.Contains(t, le.Error(), "analysis_summary")
}

func TestLoad_OptionalHasMediaColumn(t *testing.T) {
	csvData := `Message_ID,Text_Preview,Categories,Subcategories,Intensity_Score,Views,Forwards,Date
msg_1,x,Cat A,1.sub,1,100,0,2025-01-01
`
	csvPath, jsonPath := writeInputs(t, t.TempDir(), csvData, sampleJSON)

	snap, err := Load(csvPath, jsonPath)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.False(t, snap.Records[0].HasMedia)
}

func TestLoad_UnparseableDateIsZero(t *testing.T) {
	csvData := `Message_ID,Text_Preview,Categories,Subcategories,Intensity_Score,Views,Forwards,Date
msg_1,x,Cat A,1.sub,1,100,0,sometime last week
`
	csvPath, jsonPath := writeInputs(t, t.TempDir(), csvData, sampleJSON)

	snap, err := Load(csvPath, jsonPath)
	require.NoError(t, err, "bad date values degrade to zero time, they do not fail the load")
	assert.True(t, snap.Records[0].Date.IsZero())
}

func TestParseIntensity(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"2", 2, false},
		{"Level 1", 1, false},
		{"Level 3", 3, false},
		{"high", 0, true},
		{"-1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIntensity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounts_DocumentOrderPreserved(t *testing.T) {
	// Key order in the document is meaningful: top-N must mean the first N
	// entries as written, not a re-sorted view.
	doc := `{"zebra": 1, "apple": 2, "mango": 3}`

	var c Counts
	require.NoError(t, json.Unmarshal([]byte(doc), &c))

	entries := Entries(&c)
	require.Len(t, entries, 3)
	assert.Equal(t, "zebra", entries[0].Label)
	assert.Equal(t, "apple", entries[1].Label)
	assert.Equal(t, "mango", entries[2].Label)
}

func TestFirstN(t *testing.T) {
	c := counts(entry("a", 1), entry("b", 2), entry("c", 3))

	assert.Len(t, FirstN(c, 2), 2)
	assert.Equal(t, "a", FirstN(c, 2)[0].Label)
	assert.Len(t, FirstN(c, 10), 3, "n beyond length returns everything")
	assert.Nil(t, FirstN(nil, 5))
}

func TestSortedByLabelValue(t *testing.T) {
	c := counts(entry("2", 3), entry("10", 1), entry("1", 1312))

	got := SortedByLabelValue(c)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Label)
	assert.Equal(t, "2", got[1].Label)
	assert.Equal(t, "10", got[2].Label, "numeric order, not lexical")
}

func TestDefaultPaths(t *testing.T) {
	t.Run("combined_preferred", func(t *testing.T) {
		base := t.TempDir()
		for _, dir := range datasetDirs {
			full := filepath.Join(base, dir)
			require.NoError(t, os.MkdirAll(full, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(full, recordsFileName), []byte("x"), 0o644))
			require.NoError(t, os.WriteFile(filepath.Join(full, summaryFileName), []byte("x"), 0o644))
		}

		csvPath, _ := DefaultPaths(base)
		assert.Contains(t, csvPath, "combined_analysis_results")
	})

	t.Run("fallback_to_single_dataset", func(t *testing.T) {
		base := t.TempDir()
		full := filepath.Join(base, "telegram_analysis_results")
		require.NoError(t, os.MkdirAll(full, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(full, recordsFileName), []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(full, summaryFileName), []byte("x"), 0o644))

		csvPath, jsonPath := DefaultPaths(base)
		assert.Contains(t, csvPath, "telegram_analysis_results")
		assert.Contains(t, jsonPath, "telegram_analysis_results")
	})

	t.Run("neither_exists", func(t *testing.T) {
		csvPath, _ := DefaultPaths(t.TempDir())
		assert.Contains(t, csvPath, "combined_analysis_results")
	})
}