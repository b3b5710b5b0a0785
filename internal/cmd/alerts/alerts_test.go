package alerts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/panelkit/internal/cmd/output"
)

func TestAlertString(t *testing.T) {
	a := NewSuccess("Sent %s to server %s", "restart", "1")
	assert.Equal(t, "✓ Sent restart to server 1", a.String())

	a = NewWarning("status unavailable").WithError(errors.New("node offline"))
	assert.Equal(t, "! status unavailable: node offline", a.String())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
	assert.Equal(t, "i", LevelInfo.Icon())
}

func TestWriter(t *testing.T) {
	alert := NewSuccess("Logged out").WithDetails("session cleared")

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, output.FormatTable, false).Write(alert))
		assert.Equal(t, "✓ Logged out\n  session cleared\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, output.FormatJSON, false).Write(alert))
		assert.JSONEq(t, `{"level":"success","message":"Logged out","details":["session cleared"]}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf, output.FormatYAML, false).Write(alert))
		assert.Contains(t, buf.String(), "level: success")
	})
}
