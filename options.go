package panelkit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/panelkit/pkg/constants"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/loaders"
)

// options holds the Client configuration.
type options struct {
	baseURL       string
	session       string
	sessionCookie string
	timeout       time.Duration
	httpClient    *http.Client
	detailPolicy  loaders.DetailPolicy
	logger        *zerolog.Logger
}

// defaults returns the default client options.
func defaults() *options {
	return &options{
		baseURL:       constants.DefaultBaseURL,
		sessionCookie: constants.DefaultSessionCookie,
		timeout:       constants.DefaultHTTPTimeout,
		detailPolicy:  loaders.DetailParseAlways,
	}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// validate checks the options before any connection is attempted.
func (o *options) validate() error {
	if o.baseURL == "" {
		return &errors.ValidationError{Field: "base_url", Message: "base URL cannot be empty"}
	}
	if o.sessionCookie == "" {
		return &errors.ValidationError{Field: "session_cookie", Message: "session cookie name cannot be empty"}
	}
	if o.timeout < 0 {
		return &errors.ValidationError{
			Field:   "timeout",
			Value:   o.timeout,
			Message: "timeout must be non-negative",
		}
	}
	return nil
}

// Option is a function that configures a Client.
type Option func(*options)

// WithBaseURL sets the panel origin API paths resolve against.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithSession seeds the client with an existing session cookie value.
func WithSession(value string) Option {
	return func(o *options) {
		o.session = value
	}
}

// WithSessionCookie sets the name of the session cookie.
func WithSessionCookie(name string) Option {
	return func(o *options) {
		o.sessionCookie = name
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient uses a copy of hc for requests. Its own Timeout applies
// and WithTimeout is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithDetailPolicy sets how server detail loads treat non-2xx responses.
func WithDetailPolicy(p loaders.DetailPolicy) Option {
	return func(o *options) {
		o.detailPolicy = p
	}
}

// WithLogger logs client activity to logger instead of the context or default logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
