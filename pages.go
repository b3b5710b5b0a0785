package panelkit

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/panelkit/pkg/loaders"
	"github.com/agentstation/panelkit/pkg/logging"
	"github.com/agentstation/panelkit/pkg/models"
)

// LayoutData is shared by every page: the signed-in user, or nil.
type LayoutData struct {
	User *models.User `json:"user" yaml:"user"`
}

// ServersPageData backs the server list page.
// Servers is nil when the panel refused the list.
type ServersPageData struct {
	User    *models.User    `json:"user" yaml:"user"`
	Servers []models.Server `json:"servers" yaml:"servers"`
}

// ServerPageData backs the single server page.
// Status is nil when the server's node could not report it.
// Response carries the status and body of the server load; check
// Response.Err before trusting Server.
type ServerPageData struct {
	User     *models.User            `json:"user" yaml:"user"`
	Server   *models.Server          `json:"server" yaml:"server"`
	Status   *models.ServerStatus    `json:"status,omitempty" yaml:"status,omitempty"`
	Response *loaders.ServerResponse `json:"-" yaml:"-"`
}

// LoadLayout loads the data every page shares.
func (c *client) LoadLayout(ctx context.Context) (*LayoutData, error) {
	user, err := c.loader.LoadUser(c.context(ctx))
	if err != nil {
		return nil, err
	}
	return &LayoutData{User: user}, nil
}

// LoadServersPage loads the user and the server list concurrently.
// The first failure cancels the other load.
func (c *client) LoadServersPage(ctx context.Context) (*ServersPageData, error) {
	g, ctx := errgroup.WithContext(c.context(ctx))
	data := &ServersPageData{}

	g.Go(func() error {
		user, err := c.loader.LoadUser(ctx)
		data.User = user
		return err
	})
	g.Go(func() error {
		servers, err := c.loader.LoadServerList(ctx)
		data.Servers = servers
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadServerPage loads the user, one server and its status concurrently.
// A failed status load leaves Status nil and is logged unless another
// load already canceled the group.
func (c *client) LoadServerPage(ctx context.Context, id string) (*ServerPageData, error) {
	g, gctx := errgroup.WithContext(c.context(ctx))
	data := &ServerPageData{}

	g.Go(func() error {
		user, err := c.loader.LoadUser(gctx)
		data.User = user
		return err
	})
	g.Go(func() error {
		resp, err := c.loader.LoadServerResponse(gctx, id)
		if err != nil {
			return err
		}
		data.Server = resp.Server
		data.Response = resp
		return nil
	})
	g.Go(func() error {
		status, err := c.loader.LoadServerStatus(gctx, id)
		if err != nil {
			if gctx.Err() != nil {
				return nil
			}
			logging.FromContext(gctx).Warn().
				Err(err).
				Str("server_id", id).
				Msg("Server status unavailable")
			return nil
		}
		data.Status = status
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
