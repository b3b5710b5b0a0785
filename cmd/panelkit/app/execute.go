package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/panelkit/cmd/panelkit/cmd/servers"
	"github.com/agentstation/panelkit/cmd/panelkit/cmd/session"
	"github.com/agentstation/panelkit/cmd/panelkit/cmd/user"
	"github.com/agentstation/panelkit/cmd/panelkit/cmd/version"
)

// Execute runs the panelkit CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// ExecuteWithIO runs the CLI with the given arguments and standard streams.
func (a *App) ExecuteWithIO(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "panelkit",
		Short:   "Server control panel CLI",
		Version: a.version,
		Long: `Panelkit talks to a game server control panel API.

It signs in with a username and password, keeps the session cookie the panel
issues, and loads the current user, the servers you can see and the state of
each server. Servers can be started, stopped, restarted and killed.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "session",
		Title: "Session Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.ConfigFile, "config", "", "config file (default is $HOME/.panelkit.yaml)")
	flags.StringVar(&a.flags.BaseURL, "base-url", "", "panel origin (default "+a.config.BaseURL+")")
	flags.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.flags.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	flags.StringVarP(&a.flags.Format, "format", "o", "", "output format: table, json, yaml, wide")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("panelkit {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	if a.flags.ConfigFile != "" {
		config, err := LoadConfig(a.flags.ConfigFile)
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.UpdateFromFlags(&a.flags)

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("base_url", a.config.BaseURL).
		Str("config_file", a.config.ConfigFile).
		Msg("Configuration loaded")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(servers.NewCommand(a))

	// Session commands
	rootCmd.AddCommand(user.NewCommand(a))
	rootCmd.AddCommand(session.NewLoginCommand(a))
	rootCmd.AddCommand(session.NewLogoutCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
