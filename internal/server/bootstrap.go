package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentstation/cicd-workshop/internal/server/middleware"
)

// Bootstrap owns the process's router and its single server handle.
// Constructing a Bootstrap has no side effects; the socket is opened by
// AutoStart or Run.
type Bootstrap struct {
	config Config
	logger *zerolog.Logger
	router *Router
	server *Server
}

// NewBootstrap builds the router and an unbound server for cfg.
func NewBootstrap(cfg Config, logger *zerolog.Logger) *Bootstrap {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	router := NewRouter()
	return &Bootstrap{
		config: cfg,
		logger: logger,
		router: router,
		server: New(Handler(router, logger), cfg, logger),
	}
}

// Handler wraps the router with request logging and panic recovery.
// The router itself stays free of side effects.
func Handler(router *Router, logger *zerolog.Logger) http.Handler {
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.Logger(logger),
	)(router)
}

// Router returns the route table, usable without a live socket.
func (b *Bootstrap) Router() *Router {
	return b.router
}

// Server returns the server handle.
func (b *Bootstrap) Server() *Server {
	return b.server
}

// AutoStart starts listening unless the config is in test mode.
// It reports whether a socket was bound.
func (b *Bootstrap) AutoStart() (bool, error) {
	if b.config.TestMode() {
		b.logger.Debug().
			Str("env", b.config.Env).
			Msg("Test mode, listener not started")
		return false, nil
	}
	if err := b.server.Start(); err != nil {
		return false, err
	}
	return true, nil
}

// Run starts the server (unless in test mode) and blocks until ctx is
// cancelled or the serve loop fails, then closes the handle it started.
func (b *Bootstrap) Run(ctx context.Context) error {
	started, err := b.AutoStart()
	if err != nil {
		return err
	}
	if !started {
		return nil
	}

	var serveErr error
	select {
	case <-ctx.Done():
		b.logger.Info().Msg("Shutdown signal received via context")
	case serveErr = <-b.server.Err():
	}

	// The parent context is already done; drain on a fresh one.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), b.server.config.ShutdownTimeout)
	defer cancel()

	if err := b.server.Close(shutdownCtx); err != nil && serveErr == nil {
		return err
	}
	return serveErr
}
