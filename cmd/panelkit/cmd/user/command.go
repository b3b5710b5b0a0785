// Package user provides the whoami command.
package user

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/cmdutil"
	"github.com/agentstation/panelkit/internal/cmd/output"
)

// NewCommand creates the whoami command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		GroupID: "session",
		Short:   "Show the signed-in user",
		Long: `Whoami loads the user owning the current session from the panel.

It fails when the panel does not recognize the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmdutil.Format(app)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			layout, err := client.LoadLayout(cmd.Context())
			if err != nil {
				return err
			}
			if layout.User == nil {
				return cmdutil.NotLoggedIn()
			}

			return output.User(cmd.OutOrStdout(), format, layout.User)
		},
	}
}
