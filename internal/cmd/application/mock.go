package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/panelkit"
)

// Mock is an Application for command tests. Zero fields fall back to a
// table format, colorless output, a no-op logger and "dev" build info.
type Mock struct {
	// ClientFunc builds the panel client. Nil means panelkit.New() with defaults.
	ClientFunc func() (panelkit.Client, error)

	Log    *zerolog.Logger
	Format string
	Color  bool

	Build struct {
		Version, Commit, Date, BuiltBy string
	}
}

var _ Application = (*Mock)(nil)

// Client implements Application.
func (m *Mock) Client() (panelkit.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return panelkit.New()
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.Log != nil {
		return m.Log
	}
	nop := zerolog.Nop()
	return &nop
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string { return or(m.Format, "table") }

// NoColor implements Application.
func (m *Mock) NoColor() bool { return !m.Color }

// Version implements Application.
func (m *Mock) Version() string { return or(m.Build.Version, "dev") }

// Commit implements Application.
func (m *Mock) Commit() string { return or(m.Build.Commit, "unknown") }

// Date implements Application.
func (m *Mock) Date() string { return or(m.Build.Date, "unknown") }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return or(m.Build.BuiltBy, "test") }

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
