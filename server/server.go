package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/byte4ever/md5kit/config"
)

const shutdownGrace = 5 * time.Second

// Server serves the digest API.
type Server struct {
	cfg      *config.Config
	router   *chi.Mux
	validate *validator.Validate
}

// New builds a Server and its routes from cfg.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	s.router.Use(middleware()...)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/hash/raw", s.handleHashRaw)

		r.Group(func(r chi.Router) {
			r.Use(jsonContentType)

			r.Post("/hash", s.handleHash)
			r.Post("/explain", s.handleExplain)
			r.Post("/compare", s.handleCompare)
		})
	})

	return s
}

// middleware lists the router middleware, outermost first.
// The logger wraps recovery so a recovered panic is logged with
// its 500 status.
func middleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		logger,
		recovery,
	}
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx
// is cancelled.
func (s *Server) Run(ctx context.Context) error {
	const errCtx = "running server"

	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.cfg.Server.Listen)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then
// shuts down gracefully. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	const errCtx = "serving"

	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout.Std(),
		WriteTimeout: s.cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("%s: %w", errCtx, err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(
		context.WithoutCancel(ctx), shutdownGrace,
	)
	defer cancel()

	slog.Info("shutting down")

	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}
