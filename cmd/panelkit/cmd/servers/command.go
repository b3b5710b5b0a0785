// Package servers provides the servers resource command and subcommands.
package servers

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/internal/cmd/application"
)

// NewCommand creates the servers resource command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "servers",
		Aliases: []string{"server"},
		GroupID: "core",
		Short:   "List, inspect and control servers",
		Example: `  panelkit servers list                 # List your servers
  panelkit servers list -o wide         # Include node, owner, image and ports
  panelkit servers get 42               # Show server 42 and its status
  panelkit servers status 42            # Show only the status
  panelkit servers signal 42 restart    # Restart server 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewGetCommand(app))
	cmd.AddCommand(NewStatusCommand(app))
	cmd.AddCommand(NewSignalCommand(app))

	return cmd
}
