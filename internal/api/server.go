// Package api exposes the dynprog algorithms over HTTP.
//
// Every request is solved independently; the algorithm functions hold no
// shared state, so handlers need no locking.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/dynprog/internal/config"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 30 * time.Second

	// maxBodyBytes caps request bodies before JSON parsing.
	maxBodyBytes = 8 << 20
)

// Server wraps the chi router and its settings.
type Server struct {
	router  *chi.Mux
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics
}

// NewServer creates and configures a new HTTP server.
func NewServer(cfg config.Config, logger *slog.Logger) *Server {
	srv := &Server{
		router:  chi.NewRouter(),
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(),
	}

	srv.router.Use(middleware.RequestID)
	srv.router.Use(middleware.Recoverer)
	srv.router.Use(srv.loggingMiddleware)
	srv.router.Use(srv.metrics.middleware)

	srv.routes()

	return srv
}

func (s *Server) routes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Handle("/metrics", s.metrics.handler())

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/knapsack", s.handleKnapsack)
		r.Post("/lcs", s.handleLCS)
		r.Post("/lps", s.handleLPS)
	})
}

// Router returns the chi router.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Run serves on cfg.ListenAddr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "cause", context.Cause(ctx))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// loggingMiddleware attaches a request-scoped logger to the context and
// logs each request once it completes.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		reqID := middleware.GetReqID(r.Context())
		ctx := ctxlog.WithLogger(r.Context(), s.logger.With("request_id", reqID))

		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", reqID,
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
