// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/cicd-workshop/cmd/application"
	"github.com/agentstation/cicd-workshop/internal/cmd/output"
	"github.com/agentstation/cicd-workshop/pkg/constants"
)

// Info is the build and runtime information reported by the command.
type Info struct {
	Version    string `json:"version" yaml:"version"`
	AppVersion string `json:"app_version" yaml:"app_version"`
	Commit     string `json:"commit" yaml:"commit"`
	Date       string `json:"date" yaml:"date"`
	BuiltBy    string `json:"built_by" yaml:"built_by"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	Platform   string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Collect(app)

			// Without an explicit format print the short human form
			if app.OutputFormat() == "" {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s (app %s)\n", constants.AppName, info.Version, info.AppVersion)
				fmt.Fprintf(out, "  commit:   %s\n", info.Commit)
				fmt.Fprintf(out, "  built:    %s\n", info.Date)
				fmt.Fprintf(out, "  built by: %s\n", info.BuiltBy)
				return nil
			}

			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
		},
	}
}

// Collect gathers version information from the application.
func Collect(app application.Application) Info {
	return Info{
		Version:    app.Version(),
		AppVersion: constants.AppVersion,
		Commit:     app.Commit(),
		Date:       app.Date(),
		BuiltBy:    app.BuiltBy(),
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
