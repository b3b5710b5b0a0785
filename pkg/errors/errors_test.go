package errors_test

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/panelkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "server",
			ID:       "42",
		}
		assert.Equal(t, "server with ID 42 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("server", "7")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "id",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field id: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewAPIError("/api/server/1/signal", 500, "node unreachable")
		assert.Contains(t, err.Error(), "/api/server/1/signal")
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "node unreachable")
	})

	t.Run("without endpoint", func(t *testing.T) {
		err := &pkgerrors.APIError{StatusCode: 502, Message: "bad gateway"}
		assert.Contains(t, err.Error(), "panel API")
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		err := &pkgerrors.APIError{
			Endpoint: "/api/user/self",
			Message:  "request failed",
			Err:      baseErr,
		}
		assert.Contains(t, err.Error(), "request failed")
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("status classification", func(t *testing.T) {
		tests := []struct {
			status int
			target error
		}{
			{401, pkgerrors.ErrUnauthorized},
			{403, pkgerrors.ErrUnauthorized},
			{404, pkgerrors.ErrNotFound},
			{500, pkgerrors.ErrUnavailable},
			{503, pkgerrors.ErrUnavailable},
		}
		for _, tt := range tests {
			err := pkgerrors.NewAPIError("/api/server", tt.status, "x")
			assert.ErrorIs(t, err, tt.target, "status %d", tt.status)
		}
		assert.False(t, pkgerrors.IsNotFound(pkgerrors.NewAPIError("", 400, "bad request")))
	})

	t.Run("transport failure classification", func(t *testing.T) {
		timeout := &pkgerrors.APIError{Message: "request failed", Err: context.DeadlineExceeded}
		assert.True(t, pkgerrors.IsTimeout(timeout))
		assert.False(t, pkgerrors.IsCanceled(timeout))

		canceled := &pkgerrors.APIError{Message: "request failed", Err: context.Canceled}
		assert.True(t, pkgerrors.IsCanceled(canceled))
		assert.ErrorIs(t, canceled, context.Canceled)
	})
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("base_url", "must be absolute", nil)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "must be absolute")
	assert.Nil(t, err.Unwrap())
}

func TestParseError(t *testing.T) {
	t.Run("with source", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Source:  "/api/server/42",
			Message: "unexpected end of JSON input",
		}
		assert.Equal(t, "parse error in json from /api/server/42: unexpected end of JSON input", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			Message: "syntax error",
		}
		assert.Contains(t, err.Error(), "yaml parse error")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("json", "/api/user/self", "unexpected end", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("json", "/api/server", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, "/api/server", parseErr.Source)
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			User:    "alice",
			Method:  "password",
			Message: "invalid credentials",
		}
		assert.Contains(t, err.Error(), "alice")
		assert.Contains(t, err.Error(), "password")
		assert.True(t, pkgerrors.IsUnauthorized(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("session expired")
		err := pkgerrors.NewAuthenticationError("", "session", "rejected", baseErr)
		assert.Equal(t, "authentication error (session): rejected", err.Error())
		assert.Equal(t, baseErr, err.Unwrap())
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("signal", errors.New("unknown value"))
		assert.Contains(t, err.Error(), "signal")
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("read", "response body", errors.New("unexpected EOF"))
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "read", ioErr.Operation)
		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapResource", func(t *testing.T) {
		err := pkgerrors.WrapResource("create", "request", "GET /api/server", errors.New("bad url"))
		resErr, ok := err.(*pkgerrors.ResourceError)
		require.True(t, ok)
		assert.Equal(t, "request", resErr.Resource)
		assert.Nil(t, pkgerrors.WrapResource("create", "client", "", nil))
	})
}

func TestErrorChaining(t *testing.T) {
	baseErr := errors.New("invalid character '<'")
	parseErr := pkgerrors.WrapParse("json", "/api/server/9", baseErr)
	apiErr := &pkgerrors.APIError{
		Endpoint:   "/api/server/9",
		StatusCode: 502,
		Message:    "failed to decode response",
		Err:        parseErr,
	}

	var target *pkgerrors.ParseError
	require.True(t, errors.As(apiErr, &target))
	assert.Equal(t, "/api/server/9", target.Source)
	assert.ErrorIs(t, apiErr, baseErr)
	assert.True(t, pkgerrors.IsUnavailable(apiErr))
}
