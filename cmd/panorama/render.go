// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/output"
)

var renderFormat formatValue

// renderCmd writes a static report to disk.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a static report from analysis inputs",
	Long: `Render loads the coded-messages CSV and the summary JSON, builds every
chart, and writes a single report file. If the inputs are missing or
malformed the synthetic demo dataset is used instead, so a report is always
produced.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("csv", "", "path to the coded messages CSV")
	renderCmd.Flags().String("json", "", "path to the analysis summary JSON")
	renderCmd.Flags().StringP("output", "o", "", "report file path (default report.html)")
	renderCmd.Flags().VarP(&renderFormat, "format", "f", "report format: html, json, markdown, text")
	renderCmd.Flags().Bool("sample", false, "use the synthetic demo dataset")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return exitError(ExitInvalidArgs, "panorama: %v", err)
	}

	snap, err := loadSnapshot(cfg)
	if err != nil {
		var le *dataset.LoadError
		if !errors.As(err, &le) {
			return exitError(ExitLoadFailure, "panorama: %v", err)
		}
		slog.Warn("falling back to synthetic demo dataset", "input", le.Input, "path", le.Path, "error", le.Err)
		snap = dataset.Sample()
	}

	if err := output.WriteFile(cfg.Output, cfg.Format, snap); err != nil {
		return exitError(ExitWriteFailed, "panorama: %v", err)
	}

	if !quiet {
		green := color.New(color.FgGreen)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green.Sprint("report written:"), cfg.Output)
	}
	return nil
}
