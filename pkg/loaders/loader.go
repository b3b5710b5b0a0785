// Package loaders fetches and parses the data a panel page needs before it
// renders: the current user, the server list, and a single server.
//
// Every loader follows one sequence: credentialed fetch, status check,
// JSON parse. A resource the API reports as unavailable (non-2xx) is
// returned as nil with no error. Transport failures and malformed bodies are
// returned as errors and never swallowed.
package loaders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/panelkit/internal/transport"
	"github.com/agentstation/panelkit/pkg/constants"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/logging"
	"github.com/agentstation/panelkit/pkg/models"
)

// Fetcher is the fetch capability a loader runs on.
// *transport.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, path string, opts *transport.Options) (*http.Response, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, path string, opts *transport.Options) (*http.Response, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, path string, opts *transport.Options) (*http.Response, error) {
	return f(ctx, path, opts)
}

// DetailPolicy selects how LoadServerDetail treats a non-2xx response.
type DetailPolicy int

const (
	// DetailParseAlways decodes the body whatever the status.
	DetailParseAlways DetailPolicy = iota
	// DetailCheckStatus returns nil for a non-2xx status, like the other loaders.
	DetailCheckStatus
)

// String returns the policy name.
func (p DetailPolicy) String() string {
	switch p {
	case DetailCheckStatus:
		return "check-status"
	default:
		return "parse-always"
	}
}

// Loader loads panel resources through a Fetcher.
type Loader struct {
	fetcher Fetcher
	detail  DetailPolicy
}

// Option configures a Loader.
type Option func(*Loader)

// WithDetailPolicy sets how server detail loads treat non-2xx responses.
func WithDetailPolicy(p DetailPolicy) Option {
	return func(l *Loader) {
		l.detail = p
	}
}

// New creates a Loader on top of f.
func New(f Fetcher, opts ...Option) *Loader {
	l := &Loader{fetcher: f}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DetailPolicy returns the policy in effect for server detail loads.
func (l *Loader) DetailPolicy() DetailPolicy {
	return l.detail
}

// LoadUser loads the user owning the session. It returns nil when the API
// does not answer with a 2xx status (typically 401 without a session).
func (l *Loader) LoadUser(ctx context.Context) (*models.User, error) {
	var user models.User
	res, err := l.load(ctx, "load_user", constants.PathCurrentUser, &user, true)
	if err != nil || !res.decoded {
		return nil, err
	}
	return &user, nil
}

// LoadServerList loads the servers visible to the session. It returns nil
// when the API does not answer with a 2xx status; an empty list is a
// non-nil empty slice.
func (l *Loader) LoadServerList(ctx context.Context) ([]models.Server, error) {
	servers := []models.Server{}
	res, err := l.load(ctx, "load_server_list", constants.PathServers, &servers, true)
	if err != nil || !res.decoded {
		return nil, err
	}
	return servers, nil
}

// LoadServerDetail loads one server by id. With DetailParseAlways the body
// is decoded whatever the status, so a JSON error body is returned as
// parsed and a malformed one fails with an *errors.APIError wrapping an
// *errors.ParseError. With DetailCheckStatus a non-2xx status yields nil.
// Use LoadServerResponse to see the status behind the result.
func (l *Loader) LoadServerDetail(ctx context.Context, id string) (*models.Server, error) {
	resp, err := l.LoadServerResponse(ctx, id)
	if err != nil {
		return nil, err
	}
	return resp.Server, nil
}

// ServerResponse is a server detail answer together with its status. Under
// DetailParseAlways a non-2xx answer still fills Server from whatever JSON
// the panel sent, so callers check OK (or Err) before trusting it.
type ServerResponse struct {
	Server     *models.Server
	StatusCode int
	// Body is the raw JSON body. It is nil when the body was discarded.
	Body json.RawMessage

	path string
}

// OK reports whether the panel answered with a 2xx status.
func (r *ServerResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns nil for a 2xx answer and an *errors.APIError otherwise. The
// message is the body's "error" or "message" field when present, else the
// body text.
func (r *ServerResponse) Err() error {
	if r.OK() {
		return nil
	}
	return errors.NewAPIError(r.path, r.StatusCode, errorMessage(r.Body, r.StatusCode))
}

// LoadServerResponse loads one server by id under the loader's DetailPolicy
// and reports the status the panel answered with. Server is nil when the
// policy is DetailCheckStatus and the status is not 2xx.
func (l *Loader) LoadServerResponse(ctx context.Context, id string) (*ServerResponse, error) {
	path, err := serverPath(id)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithServer(ctx, id)

	var server models.Server
	res, err := l.load(ctx, "load_server_detail", path, &server, l.detail == DetailCheckStatus)
	if err != nil {
		return nil, err
	}

	resp := &ServerResponse{StatusCode: res.status, Body: res.body, path: path}
	if res.decoded {
		resp.Server = &server
	}
	return resp, nil
}

// loadResult describes a completed load.
type loadResult struct {
	status  int
	body    json.RawMessage
	decoded bool
}

// load fetches path and decodes the body into target. When checkStatus is
// set and the status is not 2xx the body is discarded and decoded is false.
func (l *Loader) load(ctx context.Context, operation, path string, target any, checkStatus bool) (loadResult, error) {
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, operation)
	logger := logging.FromContext(ctx)
	start := time.Now()

	resp, err := l.fetcher.Fetch(ctx, path, nil)
	if err != nil {
		return loadResult{}, err
	}
	res := loadResult{status: resp.StatusCode}

	if checkStatus && !transport.IsSuccess(resp) {
		transport.Discard(resp)
		logger.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("Resource unavailable")
		return res, nil
	}

	res.body, err = transport.DecodeJSON(resp, target, path)
	if err != nil {
		if !transport.IsSuccess(resp) {
			return res, &errors.APIError{
				Endpoint:   path,
				StatusCode: resp.StatusCode,
				Message:    "failed to decode response",
				Err:        err,
			}
		}
		return res, err
	}
	res.decoded = true

	logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Resource loaded")
	return res, nil
}

// errorMessage extracts a readable message from an error body.
func errorMessage(body json.RawMessage, status int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// serverPath builds /api/server/{id} with id escaped as a single segment.
func serverPath(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", errors.NewValidationError("id", id, "server id cannot be empty")
	}
	return constants.PathServers + "/" + url.PathEscape(id), nil
}
