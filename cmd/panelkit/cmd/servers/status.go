package servers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/cmdutil"
	"github.com/agentstation/panelkit/internal/cmd/output"
	"github.com/agentstation/panelkit/pkg/errors"
)

// statusResult is the structured form of the status command output.
type statusResult struct {
	ID     string `json:"id" yaml:"id"`
	Status string `json:"status" yaml:"status"`
}

// NewStatusCommand creates the servers status subcommand.
func NewStatusCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show whether a server is running",
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

			status, err := client.ServerStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if status == nil {
				return errors.NewResourceError("load", "server status", args[0], errors.ErrUnavailable)
			}

			if format.IsTable() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), status.String())
				return err
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), statusResult{ID: args[0], Status: status.String()})
		},
	}
}
