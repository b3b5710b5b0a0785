// Package app wires configuration, logging and the panel client together
// for the panelkit CLI.
package app

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/panelkit"
	"github.com/agentstation/panelkit/internal/cmd/application"
	"github.com/agentstation/panelkit/internal/cmd/output"
	"github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/loaders"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the panelkit application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	flags  Flags
	logger *zerolog.Logger

	// Panel client (lazy-initialized, singleton)
	mu     sync.Mutex
	client panelkit.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured format, or table on a terminal and
// JSON otherwise.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format, os.Stdout))
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Client returns the panel client, creating it on first use.
func (a *App) Client() (panelkit.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	c, err := panelkit.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "panel client", a.config.BaseURL, err)
	}
	a.client = c
	return c, nil
}

// clientOptions builds panel client options from the configuration.
func (a *App) clientOptions() []panelkit.Option {
	opts := []panelkit.Option{
		panelkit.WithBaseURL(a.config.BaseURL),
		panelkit.WithSessionCookie(a.config.SessionCookie),
		panelkit.WithTimeout(a.config.Timeout),
		panelkit.WithLogger(a.logger),
	}
	if a.config.Session != "" {
		opts = append(opts, panelkit.WithSession(a.config.Session))
	}
	if a.config.DetailStatusCheck {
		opts = append(opts, panelkit.WithDetailPolicy(loaders.DetailCheckStatus))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom panel client (useful for testing).
func WithClient(c panelkit.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
