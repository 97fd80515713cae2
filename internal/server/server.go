// Copyright 2026 The Kavorites Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/koudijs/kavorites/internal/ingress"
	"github.com/koudijs/kavorites/internal/metrics"
)

// scanTimeout bounds a single cluster scan triggered by an API request.
const scanTimeout = 15 * time.Second

//go:embed web/index.html
var indexHTML []byte

// Server serves the ingress API and the overview page
type Server struct {
	host    string
	port    int
	scanner ingress.Scanner
	server  *http.Server
}

// NewServer creates a new API server. A nil scanner means no Kubernetes
// credentials resolved; the server still runs and reports the degraded
// state through /api/health while /api/ingresses fails.
func NewServer(host string, port int, scanner ingress.Scanner) *Server {
	return &Server{
		host:    host,
		port:    port,
		scanner: scanner,
	}
}

// Router builds the HTTP routing table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Route("/api", func(api chi.Router) {
		api.Get("/ingresses", metrics.InstrumentHandler("/api/ingresses", http.HandlerFunc(s.handleIngresses)))
		api.Get("/health", metrics.InstrumentHandler("/api/health", http.HandlerFunc(s.handleHealth)))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start runs the server until the context is cancelled or the listener
// fails
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.host, s.port),
		Handler: s.Router(),
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		log.Log.Info("Starting HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// handleIngresses scans the cluster and renders the enabled ingresses
func (s *Server) handleIngresses(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())

	if s.scanner == nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Kubernetes client not available"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), scanTimeout)
	defer cancel()

	views, err := s.scanner.Scan(ctx)
	if err != nil {
		logger.Error(err, "Failed to scan cluster for ingresses")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, IngressListResponse{
		Ingresses: views,
		Count:     len(views),
	})
}

// handleHealth reports liveness and whether cluster credentials resolved
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:             "healthy",
		K8sClientAvailable: s.scanner != nil,
	})
}

// handleIndex serves the embedded overview page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
