package transport

import (
	"io"
	"net/http"
)

// Credentials controls whether the session cookie jar takes part in a request.
type Credentials string

const (
	// CredentialsInclude sends and stores cookies for every request.
	CredentialsInclude Credentials = "include"
	// CredentialsSameOrigin sends and stores cookies only for the base URL's origin.
	CredentialsSameOrigin Credentials = "same-origin"
	// CredentialsOmit never sends or stores cookies.
	CredentialsOmit Credentials = "omit"
)

// Options are per-request settings. Zero fields are unset and take their
// value from the defaults when merged.
type Options struct {
	Method      string
	Header      http.Header
	Body        io.Reader
	Credentials Credentials
}

// DefaultOptions returns the options every fetch starts from: a GET that
// includes credentials.
func DefaultOptions() Options {
	return Options{
		Method:      http.MethodGet,
		Credentials: CredentialsInclude,
	}
}

// MergeOptions layers override on top of base, field by field. Set fields of
// override win; unset fields keep base's value. The merge is shallow (a
// caller Header replaces the default Header whole) and mutates neither input.
func MergeOptions(base Options, override *Options) Options {
	merged := base
	if override == nil {
		return merged
	}
	if override.Method != "" {
		merged.Method = override.Method
	}
	if override.Header != nil {
		merged.Header = override.Header
	}
	if override.Body != nil {
		merged.Body = override.Body
	}
	if override.Credentials != "" {
		merged.Credentials = override.Credentials
	}
	return merged
}
