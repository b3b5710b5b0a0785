package loaders_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/panelkit/pkg/errors"
	"github.com/agentstation/panelkit/pkg/models"
)

func TestLoadServerStatus(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		l, _ := panelServer(t, map[string]http.HandlerFunc{
			"GET /api/server/5/status": respond(http.StatusOK, `"Running"`),
		})

		status, err := l.LoadServerStatus(context.Background(), "5")
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, models.ServerStatusRunning, *status)
	})

	t.Run("node error is absent", func(t *testing.T) {
		l, _ := panelServer(t, map[string]http.HandlerFunc{
			"GET /api/server/5/status": respond(http.StatusInternalServerError, "node offline"),
		})

		status, err := l.LoadServerStatus(context.Background(), "5")
		assert.NoError(t, err)
		assert.Nil(t, status)
	})

	t.Run("empty id", func(t *testing.T) {
		l, _ := panelServer(t, nil)

		status, err := l.LoadServerStatus(context.Background(), "")
		assert.Nil(t, status)
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestSendSignal(t *testing.T) {
	var received models.ServerSignal
	l, _ := panelServer(t, map[string]http.HandlerFunc{
		"POST /api/server/5/signal": func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Type") != "application/json" {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
				return
			}
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
		},
		"POST /api/server/6/signal": respond(http.StatusInternalServerError, "node unreachable"),
	})
	ctx := context.Background()

	t.Run("delivered", func(t *testing.T) {
		require.NoError(t, l.SendSignal(ctx, "5", models.ServerSignalRestart))
		assert.Equal(t, models.ServerSignalRestart, received)
	})

	t.Run("node failure", func(t *testing.T) {
		err := l.SendSignal(ctx, "6", models.ServerSignalStop)
		var apiErr *pkgerrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "node unreachable", apiErr.Message)
		assert.Equal(t, "/api/server/6/signal", apiErr.Endpoint)
		assert.True(t, pkgerrors.IsUnavailable(err))
	})

	t.Run("unknown signal", func(t *testing.T) {
		err := l.SendSignal(ctx, "5", models.ServerSignal("Pause"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
