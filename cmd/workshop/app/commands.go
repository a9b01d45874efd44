package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cicd-workshop/cmd/workshop/cmd/routes"
	"github.com/agentstation/cicd-workshop/cmd/workshop/cmd/serve"
	"github.com/agentstation/cicd-workshop/cmd/workshop/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	serveCmd := serve.NewCommand(a)
	serveCmd.GroupID = "core"
	rootCmd.AddCommand(serveCmd)

	routesCmd := routes.NewCommand(a)
	routesCmd.GroupID = "core"
	rootCmd.AddCommand(routesCmd)

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
