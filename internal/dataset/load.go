// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Input names used in LoadError to identify which side of the pair failed.
const (
	InputCSV  = "csv"
	InputJSON = "json"
)

// LoadError reports that one of the two inputs could not be loaded. Loading
// is all-or-nothing: if either input fails, no Snapshot is produced and the
// caller decides whether to fall back to synthetic data.
type LoadError struct {
	Input string // InputCSV or InputJSON
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Input, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Required CSV columns. Has_Media is optional.
var requiredColumns = []string{
	"Message_ID",
	"Text_Preview",
	"Categories",
	"Subcategories",
	"Intensity_Score",
	"Views",
	"Forwards",
	"Date",
}

// Analyzer output file names and the directories probed by DefaultPaths.
const (
	recordsFileName = "coded_messages_detailed.csv"
	summaryFileName = "analysis_summary.json"
)

var datasetDirs = []string{
	"combined_analysis_results",
	"telegram_analysis_results",
}

// DefaultPaths returns the conventional analyzer output locations, preferring
// the combined dataset directory and falling back to the single-channel one.
// When neither directory holds both files, the preferred paths are returned
// anyway and the subsequent Load fails with a LoadError.
func DefaultPaths(baseDir string) (csvPath, jsonPath string) {
	for _, dir := range datasetDirs {
		c := filepath.Join(baseDir, dir, recordsFileName)
		j := filepath.Join(baseDir, dir, summaryFileName)
		if fileExists(c) && fileExists(j) {
			return c, j
		}
	}
	return filepath.Join(baseDir, datasetDirs[0], recordsFileName),
		filepath.Join(baseDir, datasetDirs[0], summaryFileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads the per-message CSV and the JSON summary document and returns
// them as one immutable Snapshot. There is no partial success: any failure
// on either input returns a *LoadError naming the input, and no Snapshot.
func Load(csvPath, jsonPath string) (*Snapshot, error) {
	records, err := loadRecords(csvPath)
	if err != nil {
		return nil, &LoadError{Input: InputCSV, Path: csvPath, Err: err}
	}

	summary, err := loadSummary(jsonPath)
	if err != nil {
		return nil, &LoadError{Input: InputJSON, Path: jsonPath, Err: err}
	}

	return &Snapshot{Records: records, Summary: summary}, nil
}

func loadRecords(path string) ([]Record, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided input path
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column count validated via the header below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	mediaIdx, hasMediaCol := idx["Has_Media"]

	var records []Record
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line+1, err)
		}
		line++

		field := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		intensity, err := parseIntensity(field("Intensity_Score"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		views, err := strconv.Atoi(field("Views"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad Views %q", line, field("Views"))
		}
		forwards, err := strconv.Atoi(field("Forwards"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad Forwards %q", line, field("Forwards"))
		}

		rec := Record{
			MessageID:   field("Message_ID"),
			TextPreview: field("Text_Preview"),
			Category:    field("Categories"),
			Subcategory: field("Subcategories"),
			Intensity:   intensity,
			Views:       views,
			Forwards:    forwards,
			Date:        parseDate(field("Date")),
		}
		if hasMediaCol && mediaIdx < len(row) {
			rec.HasMedia = parseBool(strings.TrimSpace(row[mediaIdx]))
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseIntensity accepts both the bare integer form ("1") and the labeled
// form ("Level 1") seen in some analyzer exports.
func parseIntensity(s string) (int, error) {
	v := strings.TrimPrefix(s, "Level ")
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad Intensity_Score %q", s)
	}
	return n, nil
}

// dateLayouts covers the formats the analyzer has been observed to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate returns the zero time for unparseable values; the timeline
// builder skips records without a usable date rather than failing the load.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func loadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided input path
	if err != nil {
		return nil, err
	}

	var summary Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	if summary.Overview == (Overview{}) {
		return nil, fmt.Errorf("missing required key %q", "analysis_summary")
	}
	return &summary, nil
}