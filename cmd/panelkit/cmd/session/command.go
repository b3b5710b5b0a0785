// Package session provides the login and logout commands.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agentstation/panelkit/internal/cmd/alerts"
	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/cmdutil"
	"github.com/agentstation/panelkit/internal/cmd/output"
	"github.com/agentstation/panelkit/pkg/errors"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(app application.Application) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:     "login [username]",
		GroupID: "session",
		Short:   "Open a panel session",
		Long: `Login signs in to the panel and prints the session cookie as a
shell export line, so later commands can reuse the session:

  eval "$(panelkit login alice)"

The password is read from ` + cmdutil.PasswordEnvVar + ` when set, otherwise
it is prompted for without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				username = args[0]
			}
			p := newPrompter(cmd)
			if username == "" {
				name, err := p.line("Username: ")
				if err != nil {
					return err
				}
				if name == "" {
					return errors.NewValidationError("username", "", "username cannot be empty")
				}
				username = name
			}

			password, err := readPassword(p)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.Login(cmd.Context(), username, password); err != nil {
				return err
			}

			session := client.Session()
			if session == "" {
				return errors.NewAuthenticationError(username, "password", "panel did not return a session cookie", nil)
			}

			app.Logger().Debug().Str("user", username).Msg("Session opened")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", cmdutil.SessionEnvVar, session)
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "panel username")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		GroupID: "session",
		Short:   "End the panel session",
		Long: `Logout ends the panel session and prints the shell line that clears
` + cmdutil.SessionEnvVar + `:

  eval "$(panelkit logout)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.Logout(cmd.Context()); err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "unset %s\n", cmdutil.SessionEnvVar); err != nil {
				return err
			}
			return alerts.NewWriter(cmd.ErrOrStderr(), output.FormatTable, app.NoColor()).
				Write(alerts.NewSuccess("Logged out"))
		},
	}
}

// readPassword returns the password from the environment or a prompt.
func readPassword(p *prompter) (string, error) {
	if password, ok := os.LookupEnv(cmdutil.PasswordEnvVar); ok {
		return password, nil
	}
	return p.secret("Password: ")
}

// prompter reads answers from the command's stdin and writes labels to stderr.
type prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, reader: bufio.NewReader(in), out: cmd.ErrOrStderr()}
}

// line reads one line of visible input.
func (p *prompter) line(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, label)

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WrapIO("read", "stdin", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// secret reads one line without echo when stdin is a terminal.
func (p *prompter) secret(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.line(label)
	}

	_, _ = fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(int(f.Fd()))
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.WrapIO("read", "password", err)
	}
	return string(b), nil
}
