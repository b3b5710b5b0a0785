// Package constants provides shared constants used throughout panelkit.
// This includes timeouts, API paths, session defaults, and file permissions
// that should be consistent across the library and the CLI.
package constants

import "time"

// DefaultHTTPTimeout is the standard timeout for HTTP requests to the panel API
const DefaultHTTPTimeout = 30 * time.Second

// API paths served by the panel orchestrator. Paths are relative to the base URL.
const (
	// PathCurrentUser returns the user owning the session
	PathCurrentUser = "/api/user/self"

	// PathServers is the server collection
	PathServers = "/api/server"

	// PathLogin accepts a JSON username/password and sets the session cookie
	PathLogin = "/api/auth/login"

	// PathLogout clears the session
	PathLogout = "/api/auth/logout"
)

// Session defaults
const (
	// DefaultBaseURL is where the panel front-end and API are served in development
	DefaultBaseURL = "http://localhost:3000"

	// DefaultSessionCookie is the cookie name the orchestrator's session layer uses
	DefaultSessionCookie = "id"
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxErrorBodySize caps how much of a failed response body is kept in an error message
	MaxErrorBodySize = 4096
)
