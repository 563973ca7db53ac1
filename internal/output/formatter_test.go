// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrativelab/panorama/internal/dataset"
)

func TestGetFormatter_Registered(t *testing.T) {
	for _, name := range []string{"html", "json", "markdown", "text"} {
		f, err := GetFormatter(name)
		require.NoError(t, err, "formatter %q", name)
		assert.Equal(t, name, f.Name())
	}
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format: "yaml"`)
	assert.Contains(t, err.Error(), "html", "error lists the available formats")
}

func TestFormatterNames_Sorted(t *testing.T) {
	names := FormatterNames()
	assert.Equal(t, []string{"html", "json", "markdown", "text"}, names)
}

func TestRegisterFormatter_Replaces(t *testing.T) {
	defer func() {
		resetFmtForTesting()
		RegisterFormatter(NewHTMLFormatter())
		RegisterFormatter(NewJSONFormatter())
		RegisterFormatter(NewMarkdownFormatter())
		RegisterFormatter(NewTextFormatter())
	}()

	resetFmtForTesting()
	RegisterFormatter(NewJSONFormatter())
	assert.Equal(t, []string{"json"}, FormatterNames())
}

func TestWriteFile_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	err := WriteFile(path, "markdown", dataset.Sample())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Content Analysis Report")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.out")

	err := WriteFile(path, "pdf", dataset.Sample())
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestWriteFile_FormatterErrorLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.bad")

	RegisterFormatter(failingFormatter{})
	defer func() {
		resetFmtForTesting()
		RegisterFormatter(NewHTMLFormatter())
		RegisterFormatter(NewJSONFormatter())
		RegisterFormatter(NewMarkdownFormatter())
		RegisterFormatter(NewTextFormatter())
	}()

	err := WriteFile(path, "failing", dataset.Sample())
	require.Error(t, err)
	assert.NoFileExists(t, path, "a failed render never replaces the target")
}

type failingFormatter struct{}

func (failingFormatter) Name() string { return "failing" }

func (failingFormatter) Format(_ *dataset.Snapshot, _ io.Writer) error {
	return assert.AnError
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12000, "12,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in), "FormatCount(%d)", tt.in)
	}
}