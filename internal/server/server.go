// Package server exposes the simulator over HTTP: an HTML form, a JSON API
// and PDF report downloads. It keeps no state between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rovshanmuradov/inbeef/internal/branding"
	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config holds server configuration
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	Logger   *zap.Logger
	Engine   *simulation.Engine
	Exporter *report.Exporter
	Assets   branding.Assets
	// Defaults pre-fills the HTML form.
	Defaults simulation.Input
}

// Server serves the simulator
type Server struct {
	config   Config
	logger   *zap.Logger
	engine   *simulation.Engine
	exporter *report.Exporter
	pages    *pages
	handler  http.Handler
}

// New creates a server. Exporter must be able to render PDF.
func New(cfg Config) (*Server, error) {
	if cfg.Exporter == nil {
		return nil, errors.New("server requires an exporter")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := cfg.Engine
	if engine == nil {
		engine = simulation.NewEngine(logger)
	}

	p, err := newPages(cfg.Assets)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   cfg,
		logger:   logger.Named("server"),
		engine:   engine,
		exporter: cfg.Exporter,
		pages:    p,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /simulate", s.handleSimulateForm)
	mux.HandleFunc("GET /report", s.handleReport)
	mux.HandleFunc("POST /api/simulate", s.handleAPISimulate)
	mux.HandleFunc("POST /api/report", s.handleAPIReport)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = requestID(loggingMiddleware(s.logger, recoverMiddleware(s.logger, mux)))
	return s, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.logger),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.logger.Info("Shutting down HTTP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
