// Package routes provides the command that lists the server's route table.
package routes

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/cicd-workshop/cmd/application"
	"github.com/agentstation/cicd-workshop/internal/cmd/output"
	"github.com/agentstation/cicd-workshop/internal/server"
)

// Route is the printable form of a route table entry.
type Route struct {
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Allow       string `json:"allow" yaml:"allow"`
}

// NewCommand creates the routes command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes the server answers",
		Long: `List the route table without starting a server.

Every GET route also answers HEAD. Requests for a known path with another
method receive 405 with an Allow header; unknown paths receive 404.`,
		Example: `  workshop routes
  workshop routes -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(output.DetectFormat(string(format)))
			return formatter.Format(cmd.OutOrStdout(), List(server.NewRouter()))
		},
	}
}

// List describes every registered route in registration order.
func List(router *server.Router) []Route {
	table := router.Routes()
	routes := make([]Route, 0, len(table))
	for _, r := range table {
		routes = append(routes, Route{
			Method:      r.Method,
			Path:        r.Path,
			ContentType: r.Handler().ContentType,
			Allow:       strings.Join(router.Allowed(r.Path), ", "),
		})
	}
	return routes
}
