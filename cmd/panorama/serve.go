// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/narrativelab/panorama/internal/config"
	"github.com/narrativelab/panorama/internal/dashboard"
	"github.com/narrativelab/panorama/internal/dataset"
)

// serveCmd runs the interactive web dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive web dashboard",
	Long: `Serve starts an HTTP server with the dashboard pages. Data is reloaded
from the input files on every request, so changes show up on refresh. With
--sample the server renders the synthetic demo dataset instead.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("csv", "", "path to the coded messages CSV")
	serveCmd.Flags().String("json", "", "path to the analysis summary JSON")
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().Bool("sample", false, "use the synthetic demo dataset")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return exitError(ExitInvalidArgs, "panorama: %v", err)
	}

	// Unlike render, serve refuses to silently swap in demo data: a dashboard
	// over the wrong dataset is worse than no dashboard.
	if _, err := loadSnapshot(cfg); err != nil {
		return exitError(ExitLoadFailure, "panorama: %v (use --sample for the demo dataset)", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := dashboard.NewServer(snapshotLoader(cfg))
	return srv.Run(ctx, cfg.Addr)
}

// snapshotLoader adapts the config into the per-request loader the
// dashboard expects.
func snapshotLoader(cfg *config.Config) dashboard.LoadFunc {
	return func() (*dataset.Snapshot, error) {
		return loadSnapshot(cfg)
	}
}