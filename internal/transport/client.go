package transport

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/agentstation/panelkit/pkg/constants"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client issues credentialed requests against the panel's origin.
// Cookies set by the API (the session) are kept in a jar shared by every
// request that includes credentials. A Client is safe for concurrent use.
type Client struct {
	base *url.URL
	jar  http.CookieJar
	http *http.Client // carries the jar
	anon *http.Client // same transport, no jar
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient uses a copy of hc for requests. A Jar set on hc holds the
// session; otherwise a fresh in-memory jar is used.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.http = &cp
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New creates a client for the panel served at baseURL.
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.NewConfigError("base_url", "invalid URL", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.NewConfigError("base_url", "scheme must be http or https: "+baseURL, nil)
	}
	if base.Host == "" {
		return nil, errors.NewConfigError("base_url", "missing host: "+baseURL, nil)
	}

	c := &Client{
		base: base,
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.jar = c.http.Jar
	if c.jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, errors.WrapResource("create", "cookie jar", "", err)
		}
		c.jar = jar
	}
	c.http.Jar = c.jar

	anon := *c.http
	anon.Jar = nil
	c.anon = &anon

	return c, nil
}

// SetSession stores a session cookie for the base URL, as if the API had set it.
func (c *Client) SetSession(name, value string) {
	c.jar.SetCookies(c.base, []*http.Cookie{{
		Name:  name,
		Value: value,
		Path:  "/",
	}})
}

// Session returns the value of the named cookie for the base URL, or "".
func (c *Client) Session(name string) string {
	for _, cookie := range c.jar.Cookies(c.base) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// Fetch performs a request for path with the default options layered under
// opts. Relative paths resolve against the base URL. The raw response is
// returned; the caller owns the body. A request that produced no response
// returns an *errors.APIError with a zero status wrapping the cause.
func (c *Client) Fetch(ctx context.Context, path string, opts *Options) (*http.Response, error) {
	o := MergeOptions(DefaultOptions(), opts)

	target, err := c.resolve(path)
	if err != nil {
		return nil, errors.WrapResource("create", "request", o.Method+" "+path, err)
	}

	req, err := http.NewRequestWithContext(ctx, o.Method, target.String(), o.Body)
	if err != nil {
		return nil, errors.WrapResource("create", "request", o.Method+" "+path, err)
	}
	for key, values := range o.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if o.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.anon
	if c.sendsCredentials(o.Credentials, target) {
		hc = c.http
	}

	logger := logging.FromContext(ctx)
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		logger.Debug().
			Err(err).
			Str("method", o.Method).
			Str("url", target.String()).
			Msg("Request failed")
		return nil, &errors.APIError{
			Endpoint: path,
			Message:  "request failed",
			Err:      err,
		}
	}

	logger.Debug().
		Str("method", o.Method).
		Str("url", target.String()).
		Str("credentials", string(o.Credentials)).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	return resp, nil
}

// resolve turns path into an absolute URL on the base origin.
func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	return c.base.ResolveReference(ref), nil
}

// sendsCredentials reports whether the jar takes part in a request to target.
func (c *Client) sendsCredentials(mode Credentials, target *url.URL) bool {
	switch mode {
	case CredentialsOmit:
		return false
	case CredentialsSameOrigin:
		return target.Scheme == c.base.Scheme && target.Host == c.base.Host
	default:
		return true
	}
}
