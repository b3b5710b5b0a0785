package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/panelkit/internal/cmd/application"
)

func TestVersionCommand(t *testing.T) {
	app := &application.Mock{}
	app.Build.Version = "1.2.0"
	app.Build.Commit = "abc123"

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "panelkit version 1.2.0")
	assert.Contains(t, out.String(), "commit: abc123")
	assert.Contains(t, out.String(), "built by: test")
}
