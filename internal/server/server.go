// Package server provides the HTTP router and listener lifecycle for the
// workshop app. Building a Router or a Bootstrap never opens a socket;
// listening only happens on an explicit Start.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/agentstation/cicd-workshop/pkg/errors"
)

// State is the lifecycle position of a Server.
type State int

// Server states. Closed is terminal.
const (
	StateUnbound State = iota
	StateListening
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateListening:
		return "listening"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Server owns one listening socket and the http.Server serving it.
// A Server listens at most once; create a new one to listen again.
type Server struct {
	config   Config
	logger   *zerolog.Logger
	http     *http.Server
	mu       sync.Mutex
	state    State
	listener net.Listener
	started  utc.Time
	serveErr chan error
	served   chan struct{}
	done     chan struct{}
}

// New creates an unbound server for handler. No socket is opened.
func New(handler http.Handler, cfg Config, logger *zerolog.Logger) *Server {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	cfg = cfg.withDefaults()

	return &Server{
		config: cfg,
		logger: logger,
		http: &http.Server{
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		state:    StateUnbound,
		serveErr: make(chan error, 1),
		served:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start creates a server for handler and starts listening.
func Start(handler http.Handler, cfg Config, logger *zerolog.Logger) (*Server, error) {
	srv := New(handler, cfg, logger)
	if err := srv.Start(); err != nil {
		return nil, err
	}
	return srv, nil
}

// Start binds the configured address and serves in the background.
// A bind failure returns a *errors.BindError and leaves the server unbound.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnbound {
		return errors.NewStateError("start", s.state.String(), nil)
	}

	addr := s.config.Addr()
	s.logger.Debug().Str("addr", addr).Msg("Binding listener")

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.NewBindError(addr, err)
	}

	s.listener = ln
	s.state = StateListening
	s.started = utc.Now()

	go s.serve(ln)

	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("url", "http://"+displayAddr(ln.Addr())).
		Msg("Server listening")
	return nil
}

// serve runs the accept loop until the listener is closed.
func (s *Server) serve(ln net.Listener) {
	defer close(s.served)
	if err := s.http.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Err(err).Msg("Server stopped unexpectedly")
		s.serveErr <- err
	}
}

// Close stops accepting connections, drains in-flight requests until ctx
// expires, and releases the port. Done is closed once the port is free.
// Closing twice is reported as an error wrapping errors.ErrServerClosed.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateClosed:
		s.mu.Unlock()
		s.logger.Error().Msg("Close called on a server that is already closed")
		return errors.NewStateError("close", StateClosed.String(), errors.ErrServerClosed)
	case StateUnbound:
		s.mu.Unlock()
		return errors.NewStateError("close", StateUnbound.String(), nil)
	}
	s.state = StateClosed
	ln := s.listener
	addr := ln.Addr().String()
	s.mu.Unlock()

	defer close(s.done)

	s.logger.Debug().Str("addr", addr).Msg("Shutting down server")
	err := s.http.Shutdown(ctx)
	if err != nil {
		// Drain timed out; drop remaining connections so the port is released.
		_ = s.http.Close()
		s.logger.Warn().Err(err).Msg("Graceful shutdown incomplete, connections closed")
	}

	// Shutdown only closes listeners Serve has already tracked, so a Close
	// racing the serve goroutine must release the socket itself.
	if cerr := ln.Close(); cerr != nil && !stderrors.Is(cerr, net.ErrClosed) {
		s.logger.Warn().Err(cerr).Msg("Closing listener failed")
	}
	<-s.served

	s.logger.Info().
		Str("addr", addr).
		Dur("uptime", utc.Now().Sub(s.started)).
		Msg("Server closed")
	return err
}

// CloseFunc closes the server in the background and calls done with the
// result once the port is released. The configured ShutdownTimeout bounds
// connection draining.
func (s *Server) CloseFunc(done func(error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		err := s.Close(ctx)
		if done != nil {
			done(err)
		}
	}()
}

// Done is closed after Close has released the port.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Err delivers a serve-loop failure that happened after a successful bind.
func (s *Server) Err() <-chan error {
	return s.serveErr
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.config.Addr()
}

// StartedAt returns when the server began listening; zero before Start.
func (s *Server) StartedAt() utc.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// displayAddr rewrites wildcard hosts to localhost for the startup notice.
func displayAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok || !tcp.IP.IsUnspecified() {
		return addr.String()
	}
	return net.JoinHostPort("localhost", strconv.Itoa(tcp.Port))
}
