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

func authRoutes(t *testing.T) map[string]http.HandlerFunc {
	t.Helper()
	return map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			var creds models.Credentials
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			if creds.Username != "alice" || creds.Password != "hunter2" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "id", Value: "sess-1", Path: "/", HttpOnly: true})
		},
		"GET /api/auth/logout": func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: "id", Value: "", Path: "/", MaxAge: -1})
		},
		"GET /api/user/self": func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie("id"); err != nil || c.Value != "sess-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
		},
	}
}

func TestLoginLogout(t *testing.T) {
	l, client := panelServer(t, authRoutes(t))
	ctx := context.Background()

	err := l.Login(ctx, models.Credentials{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", client.Session("id"))

	user, err := l.LoadUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	require.NoError(t, l.Logout(ctx))
	assert.Empty(t, client.Session("id"))

	user, err = l.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLoginRejected(t *testing.T) {
	l, client := panelServer(t, authRoutes(t))

	err := l.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	var authErr *pkgerrors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "alice", authErr.User)
	assert.True(t, pkgerrors.IsUnauthorized(err))
	assert.Empty(t, client.Session("id"))
}

func TestLoginValidation(t *testing.T) {
	l, _ := panelServer(t, authRoutes(t))

	err := l.Login(context.Background(), models.Credentials{Password: "x"})
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestLoginServerError(t *testing.T) {
	l, _ := panelServer(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": respond(http.StatusInternalServerError, "session store unavailable"),
	})

	err := l.Login(context.Background(), models.Credentials{Username: "alice", Password: "hunter2"})
	var apiErr *pkgerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "session store unavailable", apiErr.Message)
	assert.False(t, pkgerrors.IsUnauthorized(err))
}

func TestLogoutServerError(t *testing.T) {
	l, _ := panelServer(t, map[string]http.HandlerFunc{
		"GET /api/auth/logout": respond(http.StatusInternalServerError, ""),
	})

	err := l.Logout(context.Background())
	var apiErr *pkgerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}
