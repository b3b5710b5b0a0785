// Package cmdutil provides helpers shared by panelkit commands.
package cmdutil

import (
	"io"

	"github.com/agentstation/panelkit/internal/cmd/alerts"
	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/output"
	"github.com/agentstation/panelkit/pkg/errors"
)

// SessionEnvVar is the environment variable holding the session cookie value.
const SessionEnvVar = "PANELKIT_SESSION"

// PasswordEnvVar is the environment variable login reads the password from.
const PasswordEnvVar = "PANELKIT_PASSWORD"

// Format resolves and validates the output format configured for app.
func Format(app application.Application) (output.Format, error) {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return "", errors.WrapValidation("format", err)
	}
	return format, nil
}

// Alerts returns an alert writer for w in the format configured for app.
func Alerts(app application.Application, w io.Writer) (*alerts.Writer, error) {
	format, err := Format(app)
	if err != nil {
		return nil, err
	}
	return alerts.NewWriter(w, format, app.NoColor()), nil
}

// NotLoggedIn is returned when the panel does not recognize the session.
func NotLoggedIn() error {
	return errors.NewAuthenticationError("", "session",
		"not logged in: run 'panelkit login' or set "+SessionEnvVar, nil)
}
