// Package application provides the application interface for workshop commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be exercised with a mock in tests:
//
//	mock := &application.Mock{
//	    ServerConfigFunc: func() server.Config {
//	        return server.Config{Host: "127.0.0.1", Port: 0, Env: "test"}
//	    },
//	}
//	cmd := serve.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cicd-workshop/internal/server"
)

// Application provides the application interface that commands need.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// ServerConfig returns the listener settings resolved from the
	// environment, config file and flags.
	ServerConfig() server.Config

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
