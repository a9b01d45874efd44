// Package serve provides the command that runs the workshop HTTP server.
package serve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/cicd-workshop/cmd/application"
	"github.com/agentstation/cicd-workshop/internal/cmd/emoji"
	"github.com/agentstation/cicd-workshop/internal/server"
	"github.com/agentstation/cicd-workshop/pkg/errors"
)

// NewCommand creates the serve command using app context.
func NewCommand(app application.Application) *cobra.Command {
	defaults := app.ServerConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server", "start"},
		Short:   "Start the workshop web server",
		Long: `Start the workshop web server.

Routes:
  GET /         welcome page
  GET /health   liveness probe, always "OK"

The port is taken from --port, then PORT, then defaults to 3000. An
invalid PORT falls back to the default with a warning. With APP_ENV=test
(or GO_ENV=test) the server is constructed but does not listen.

The server runs until interrupted (Ctrl+C or SIGTERM) and then drains
in-flight requests before releasing the port. Failing to bind the port
exits with a non-zero status.`,
		Example: `  # Start on PORT or 3000
  workshop serve

  # Start on a custom port, loopback only
  workshop serve --port 8080 --host 127.0.0.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, args, app)
		},
	}

	cmd.Flags().Int("port", defaults.Port, "Server port (overrides PORT)")
	cmd.Flags().String("host", defaults.Host, "Bind address (empty for all interfaces)")

	return cmd
}

// runServer builds the bootstrap and blocks until the command context ends.
func runServer(cmd *cobra.Command, _ []string, app application.Application) error {
	cfg, err := parseConfig(cmd, app)
	if err != nil {
		return err
	}
	logger := app.Logger()

	logger.Debug().
		Str("addr", cfg.Addr()).
		Str("env", cfg.Env).
		Dur("read_timeout", cfg.ReadTimeout).
		Dur("write_timeout", cfg.WriteTimeout).
		Dur("idle_timeout", cfg.IdleTimeout).
		Msg("Parsed server configuration")

	bootstrap := server.NewBootstrap(cfg, logger)

	out := cmd.OutOrStdout()
	if cfg.TestMode() {
		fmt.Fprintf(out, "%s Test mode (env=%s): server built with %d routes, not listening\n",
			emoji.Info, cfg.Env, len(bootstrap.Router().Routes()))
		return nil
	}

	fmt.Fprintf(out, "%s Starting server on %s\n", emoji.Success, cfg.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := bootstrap.Run(cmd.Context()); err != nil {
		if errors.IsBindError(err) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s Could not bind %s\n", emoji.Error, cfg.Addr())
		}
		return errors.WrapResource("run", "server", cfg.Addr(), err)
	}

	fmt.Fprintf(out, "%s Server stopped gracefully\n", emoji.Stop)
	return nil
}

// parseConfig applies explicitly set flags on top of the app configuration.
func parseConfig(cmd *cobra.Command, app application.Application) (server.Config, error) {
	cfg := app.ServerConfig()

	if cmd.Flags().Changed("port") {
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			return cfg, err
		}
		if port < 0 || port > 65535 {
			return cfg, errors.NewValidationError("port", port, "must be between 0 and 65535")
		}
		cfg.Port = port
	}
	if cmd.Flags().Changed("host") {
		host, err := cmd.Flags().GetString("host")
		if err != nil {
			return cfg, err
		}
		cfg.Host = host
	}

	return cfg, nil
}
