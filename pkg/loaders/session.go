package loaders

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/agentstation/panelkit/internal/transport"
	"github.com/agentstation/panelkit/pkg/constants"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/logging"
	"github.com/agentstation/panelkit/pkg/models"
)

// Login opens a session with the given credentials. The API answers with a
// session cookie, which the fetcher's jar keeps for later loads.
func (l *Loader) Login(ctx context.Context, creds models.Credentials) error {
	if creds.Username == "" {
		return errors.NewValidationError("username", "", "username cannot be empty")
	}

	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, "login")

	opts, err := transport.JSONOptions(http.MethodPost, creds)
	if err != nil {
		return err
	}
	resp, err := l.fetcher.Fetch(ctx, constants.PathLogin, opts)
	if err != nil {
		return err
	}

	switch {
	case transport.IsSuccess(resp):
		transport.Discard(resp)
	case resp.StatusCode == http.StatusUnauthorized:
		msg := transport.ErrorBody(resp)
		return errors.NewAuthenticationError(creds.Username, "password", "invalid username or password", errors.New(msg))
	default:
		return errors.NewAPIError(constants.PathLogin, resp.StatusCode, transport.ErrorBody(resp))
	}

	logging.FromContext(ctx).Info().
		Str("user", creds.Username).
		Msg("Logged in")
	return nil
}

// Logout ends the current session.
func (l *Loader) Logout(ctx context.Context) error {
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, "logout")

	resp, err := l.fetcher.Fetch(ctx, constants.PathLogout, nil)
	if err != nil {
		return err
	}
	if !transport.IsSuccess(resp) {
		return errors.NewAPIError(constants.PathLogout, resp.StatusCode, transport.ErrorBody(resp))
	}
	transport.Discard(resp)

	logging.FromContext(ctx).Info().Msg("Logged out")
	return nil
}
