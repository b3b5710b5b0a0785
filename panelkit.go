// Package panelkit loads the data behind the pages of a server control
// panel: the signed-in user, the servers they can see, and the state of a
// single server.
//
// A Client wraps a cookie-carrying HTTP transport and the loaders built on
// it. Each page method issues the loads its page needs concurrently and
// returns them together, ready to render.
//
// Example usage:
//
//	pk, err := panelkit.New(
//	    panelkit.WithBaseURL("https://panel.example.com"),
//	    panelkit.WithSession(os.Getenv("PANELKIT_SESSION")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := pk.LoadServersPage(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if page.User == nil {
//	    log.Fatal("not logged in")
//	}
//	for _, s := range page.Servers {
//	    fmt.Printf("%d %s %s\n", s.ID, s.Name, s.Address())
//	}
package panelkit

import (
	"context"

	"github.com/agentstation/panelkit/internal/transport"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/loaders"
	"github.com/agentstation/panelkit/pkg/logging"
	"github.com/agentstation/panelkit/pkg/models"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Pages loads the data for each panel page.
type Pages interface {
	LoadLayout(ctx context.Context) (*LayoutData, error)
	LoadServersPage(ctx context.Context) (*ServersPageData, error)
	LoadServerPage(ctx context.Context, id string) (*ServerPageData, error)
}

// Session opens and closes the panel session.
type Session interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error

	// Session returns the current session cookie value, or "".
	Session() string
}

// Control acts on a single server.
type Control interface {
	ServerStatus(ctx context.Context, id string) (*models.ServerStatus, error)
	Signal(ctx context.Context, id string, signal models.ServerSignal) error
}

// Client is the panel client.
type Client interface {

	// Pages loads page data
	Pages

	// Session handles login and logout
	Session

	// Control sends power signals and reads server state
	Control
}

// client is the internal implementation of the Client interface.
type client struct {
	options   *options
	transport *transport.Client
	loader    *loaders.Loader
}

// New creates a Client with the given options.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}

	topts := []transport.ClientOption{transport.WithTimeout(o.timeout)}
	if o.httpClient != nil {
		topts = []transport.ClientOption{transport.WithHTTPClient(o.httpClient)}
	}

	tc, err := transport.New(o.baseURL, topts...)
	if err != nil {
		return nil, err
	}
	if o.session != "" {
		tc.SetSession(o.sessionCookie, o.session)
	}

	c := &client{
		options:   o,
		transport: tc,
		loader:    loaders.New(tc, loaders.WithDetailPolicy(o.detailPolicy)),
	}

	logging.Debug().
		Str("base_url", o.baseURL).
		Bool("session", o.session != "").
		Str("detail_policy", o.detailPolicy.String()).
		Msg("Panel client created")

	return c, nil
}

// Login opens a session; the cookie is kept for the client's later calls.
func (c *client) Login(ctx context.Context, username, password string) error {
	ctx = c.context(ctx)
	return c.loader.Login(ctx, models.Credentials{Username: username, Password: password})
}

// Logout ends the session.
func (c *client) Logout(ctx context.Context) error {
	return c.loader.Logout(c.context(ctx))
}

// Session returns the current session cookie value, or "".
func (c *client) Session() string {
	return c.transport.Session(c.options.sessionCookie)
}

// ServerStatus returns the lifecycle state of a server, or nil when the
// panel cannot report it.
func (c *client) ServerStatus(ctx context.Context, id string) (*models.ServerStatus, error) {
	return c.loader.LoadServerStatus(c.context(ctx), id)
}

// Signal sends a power signal to a server.
func (c *client) Signal(ctx context.Context, id string, signal models.ServerSignal) error {
	if err := c.loader.SendSignal(c.context(ctx), id, signal); err != nil {
		return errors.WrapResource("send", "signal", string(signal), err)
	}
	return nil
}

// context attaches the configured logger, if any.
func (c *client) context(ctx context.Context) context.Context {
	if c.options.logger != nil {
		return logging.WithLogger(ctx, c.options.logger)
	}
	return ctx
}
