// Package application defines what commands need from the panelkit CLI
// application.
//
// Commands accept the Application interface rather than the concrete app,
// so they can be tested with a Mock:
//
//	mock := &application.Mock{
//	    ClientFunc: func() (panelkit.Client, error) {
//	        return panelkit.New(panelkit.WithBaseURL(srv.URL))
//	    },
//	}
//	cmd := servers.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/panelkit"
)

// Application provides the application interface that commands need.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns the panel client, created lazily from configuration.
	Client() (panelkit.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
