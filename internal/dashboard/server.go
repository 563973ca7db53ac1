// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

// Package dashboard serves the interactive web view of an analysis run.
// Every page is rebuilt from the loader on each request, so edits to the
// underlying files show up on refresh without restarting the server.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/narrativelab/panorama/internal/dataset"
)

// shutdownGrace bounds how long in-flight requests get on shutdown.
const shutdownGrace = 10 * time.Second

// LoadFunc produces the snapshot a request should render.
type LoadFunc func() (*dataset.Snapshot, error)

// Server renders the dashboard pages.
type Server struct {
	load    LoadFunc
	runID   string
	started time.Time
}

// NewServer creates a dashboard server around the given loader.
func NewServer(load LoadFunc) *Server {
	return &Server{
		load:    load,
		runID:   uuid.NewString(),
		started: time.Now(),
	}
}

// Routes returns the dashboard handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	for _, p := range pages {
		mux.HandleFunc(p.Path, s.pageHandler(p))
	}
	return mux
}

// Run serves the dashboard on addr until the context is canceled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("dashboard listening", "addr", addr, "run_id", s.runID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dashboard: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"run_id": s.runID,
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) pageHandler(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// "/" matches every unrouted path on a ServeMux.
		if p.Path == "/" && r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		snap, err := s.load()
		if err != nil {
			slog.Error("load snapshot", "page", p.Path, "error", err)
			s.writeError(w, http.StatusInternalServerError, "failed to load analysis data")
			return
		}

		if err := renderPage(w, p, snap, s.runID); err != nil {
			slog.Error("render page", "page", p.Path, "error", err)
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
