// Package debugserver exposes the running arena over HTTP: prometheus
// metrics at /metrics and a JSON snapshot of the game at /state.
package debugserver

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/decker502/gunroom/pkg/scenes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// StateSource returns the latest published arena state. It is called from
// HTTP handler goroutines and must be safe for that.
type StateSource interface {
	Snapshot() scenes.Snapshot
}

// Config contains everything the router needs.
type Config struct {
	State    StateSource
	Gatherer prometheus.Gatherer
}

// NewRouter builds the debug routes. It starts nothing.
func NewRouter(cfg Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/state", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, cfg.State.Snapshot())
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[DebugServer] Failed to encode response: %v", err)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[DebugServer] Listening on http://%s (/metrics, /state)", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
