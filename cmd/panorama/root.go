// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	panoramalog "github.com/narrativelab/panorama/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
)

// rootCmd is the base command for panorama.
var rootCmd = &cobra.Command{
	Use:   "panorama",
	Short: "Render content-analysis dashboards and reports",
	Long: `Panorama turns the output of a content-analysis run (a CSV of coded
messages plus an aggregate summary document) into static reports and an
interactive web dashboard. When no input files are available it falls back
to a synthetic demo dataset, so every command works out of the box.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		panoramalog.Setup(verbose, quiet)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}