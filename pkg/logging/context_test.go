package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/panelkit/pkg/logging"
)

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRequestID(ctx, "req-1")
	ctx = logging.WithOperation(ctx, "load_server_detail")
	ctx = logging.WithServer(ctx, "42")

	logging.FromContext(ctx).Debug().Int("status", 200).Msg("Resource loaded")

	entries := tl.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	assert.Equal(t, "load_server_detail", entries[0]["operation"])
	assert.Equal(t, "42", entries[0]["server_id"])
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "req-1", logging.RequestID(ctx))
}

func TestFieldsDoNotLeakToParent(t *testing.T) {
	tl := logging.NewTestLogger(t)
	parent := logging.WithLogger(context.Background(), tl.Logger)
	_ = logging.WithServer(parent, "7")

	logging.FromContext(parent).Info().Msg("parent")
	tl.AssertNotContains(t, "server_id")
}

func TestFromContextDefault(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Same(t, logging.Default(), logging.FromContext(logging.WithLogger(context.Background(), nil)))
	assert.Empty(t, logging.RequestID(context.Background()))
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Trace().Msg("trace entry")
	tl.AssertContains(t, "trace entry")
	assert.Len(t, tl.Entries(), 1)

	tl.Clear()
	assert.Empty(t, tl.Output())
	assert.Empty(t, tl.Entries())
}
