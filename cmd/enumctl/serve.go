/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"dirpx.dev/enum"
	"dirpx.dev/enum/metrics"
)

const shutdownTimeout = 5 * time.Second

// Handler serves the enum registry over HTTP.
type Handler struct {
	logger  *slog.Logger
	metrics http.Handler
}

// NewHandler builds a handler exporting the global registry.
func NewHandler(logger *slog.Logger) *Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		metrics.NewCollector(enum.Registry(), metrics.WithTypeNamer(enum.TypeName)),
		collectors.NewGoCollector(),
	)
	return &Handler{
		logger:  logger,
		metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Handle("/metrics", h.metrics)
	r.Get("/types", h.HandleTypes)
	r.Get("/types/{type}", h.HandleConstants)
}

// HandleTypes handles GET /types.
func (h *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, typeViews())
}

// HandleConstants handles GET /types/{type}.
func (h *Handler) HandleConstants(w http.ResponseWriter, r *http.Request) {
	views, err := constantViews(chi.URLParam(r, "type"))
	switch {
	case errors.Is(err, ErrUnknownType):
		h.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": err.Error()})
	case err != nil:
		h.logger.ErrorContext(r.Context(), "enum type unavailable", "type", chi.URLParam(r, "type"), "error", err)
		h.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	default:
		h.writeJSON(w, r, http.StatusOK, views)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.WarnContext(r.Context(), "write response", "error", err)
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve enum types and Prometheus metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, slog.Default())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9464", "Listen address")
	return cmd
}

func serve(ctx context.Context, addr string, logger *slog.Logger) error {
	r := chi.NewRouter()
	NewHandler(logger).Register(r)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("enumctl listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("enumctl shutting down")
	return srv.Shutdown(shutdownCtx)
}
