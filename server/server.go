// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/lvmath"
	"github.com/katalvlaran/lvmath/logger"
)

const (
	// DefaultAddr is the listen address used when WithAddr is not given.
	DefaultAddr = ":8080"

	shutdownTimeout = 5 * time.Second
)

// Option configures New.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithLogger sets the access and error logger.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}

	return func(s *Server) { s.log = l }
}

// Server serves one lvmath.Math. It is safe for concurrent requests; the
// Math it wraps is immutable.
type Server struct {
	math   *lvmath.Math
	log    *slog.Logger
	addr   string
	router chi.Router
}

// New builds the router over m.
func New(m *lvmath.Math, opts ...Option) *Server {
	s := &Server{math: m, log: logger.Discard(), addr: DefaultAddr}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(accessLog(s.log))
	r.Use(chimid.Recoverer)
	r.Get("/healthz", s.healthz)
	r.Get("/config", s.config)
	r.Get("/functions", s.listFunctions)
	r.Post("/functions/{name}", s.callFunction)
	s.router = r

	return s
}

// Handler returns the HTTP handler, for embedding or httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Run listens on Addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully,
// waiting up to five seconds for in-flight requests. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("server: listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	<-errCh
	s.log.Info("server: stopped")

	return nil
}
