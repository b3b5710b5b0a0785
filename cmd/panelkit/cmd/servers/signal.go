package servers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/internal/cmd/alerts"
	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/cmdutil"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/models"
)

// NewSignalCommand creates the servers signal subcommand.
func NewSignalCommand(app application.Application) *cobra.Command {
	names := make([]string, 0, len(models.ServerSignals))
	for _, sig := range models.ServerSignals {
		names = append(names, strings.ToLower(string(sig)))
	}

	return &cobra.Command{
		Use:       "signal <id> <" + strings.Join(names, "|") + ">",
		Short:     "Start, stop, restart or kill a server",
		Args:      cobra.ExactArgs(2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			signal, err := models.ParseServerSignal(args[1])
			if err != nil {
				return errors.WrapValidation("signal", err)
			}

			writer, err := cmdutil.Alerts(app, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if err := client.Signal(cmd.Context(), args[0], signal); err != nil {
				return err
			}

			return writer.Write(alerts.NewSuccess("Sent %s to server %s", strings.ToLower(string(signal)), args[0]))
		},
	}
}
