// Package app provides the application context and dependency management
// for the workshop CLI. It centralizes configuration, logging and build
// information so commands receive them through one interface.
package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/cicd-workshop/cmd/application"
	"github.com/agentstation/cicd-workshop/internal/server"
	"github.com/agentstation/cicd-workshop/pkg/errors"
)

// App represents the workshop application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Command output, nil means stdout
	out io.Writer
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the
// optional config file; options are applied afterwards.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	app.warnConfig()
	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the requested output format, empty for auto-detect.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ServerConfig returns the listener settings for the serve command.
func (a *App) ServerConfig() server.Config {
	return server.Config{
		Host:            a.config.Host,
		Port:            a.config.Port,
		Env:             a.config.Env,
		ReadTimeout:     a.config.ReadTimeout,
		WriteTimeout:    a.config.WriteTimeout,
		IdleTimeout:     a.config.IdleTimeout,
		ShutdownTimeout: a.config.ShutdownTimeout,
	}
}

// warnConfig logs configuration values that were replaced by defaults.
func (a *App) warnConfig() {
	if a.config.PortErr != nil {
		a.logger.Warn().
			Err(a.config.PortErr).
			Int("port", a.config.Port).
			Msg("Invalid PORT, using default")
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
