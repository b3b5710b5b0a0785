package servers

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/internal/cmd/alerts"
	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/cmdutil"
	"github.com/agentstation/panelkit/internal/cmd/output"
	"github.com/agentstation/panelkit/pkg/errors"
)

// NewGetCommand creates the servers get subcommand.
func NewGetCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one server and its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.Format(app)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			page, err := client.LoadServerPage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if page.Response != nil && !page.Response.OK() {
				return page.Response.Err()
			}
			if page.Server == nil {
				return errors.NewNotFoundError("server", args[0])
			}

			if err := output.Server(cmd.OutOrStdout(), format, page.Server, page.Status); err != nil {
				return err
			}
			if page.Status == nil && format.IsTable() {
				return alerts.NewWriter(cmd.ErrOrStderr(), format, app.NoColor()).
					Write(alerts.NewWarning("status of server %s is unavailable", args[0]))
			}
			return nil
		},
	}
}
