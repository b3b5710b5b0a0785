package servers

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/cmdutil"
	"github.com/agentstation/panelkit/internal/cmd/output"
)

// NewListCommand creates the servers list subcommand.
func NewListCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the servers visible to the session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmdutil.Format(app)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			page, err := client.LoadServersPage(cmd.Context())
			if err != nil {
				return err
			}
			if page.Servers == nil {
				return cmdutil.NotLoggedIn()
			}

			app.Logger().Debug().Int("servers", len(page.Servers)).Msg("Servers loaded")
			return output.Servers(cmd.OutOrStdout(), format, page.Servers)
		},
	}
}
