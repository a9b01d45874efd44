package errors_test

import (
	"errors"
	"syscall"
	"testing"

	pkgerrors "github.com/agentstation/cicd-workshop/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestBindError(t *testing.T) {
	t.Run("message and unwrap", func(t *testing.T) {
		err := pkgerrors.NewBindError(":3000", syscall.EADDRINUSE)
		assert.Equal(t, "cannot listen on :3000: address already in use", err.Error())
		assert.True(t, errors.Is(err, syscall.EADDRINUSE))
		assert.True(t, pkgerrors.IsBindError(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewBindError(":80", errors.New("permission denied"))
		wrapped := errors.Join(errors.New("serve"), base)
		assert.True(t, pkgerrors.IsBindError(wrapped))

		var bindErr *pkgerrors.BindError
		require.True(t, errors.As(wrapped, &bindErr))
		assert.Equal(t, ":80", bindErr.Addr)
	})
}

func TestStateError(t *testing.T) {
	t.Run("double close", func(t *testing.T) {
		err := pkgerrors.NewStateError("close", "closed", pkgerrors.ErrServerClosed)
		assert.Equal(t, "cannot close server in state closed: server closed", err.Error())
		assert.True(t, pkgerrors.IsServerClosed(err))
		assert.True(t, pkgerrors.IsInvalidState(err))
	})

	t.Run("plain transition", func(t *testing.T) {
		err := pkgerrors.NewStateError("start", "listening", nil)
		assert.Equal(t, "cannot start server in state listening", err.Error())
		assert.True(t, pkgerrors.IsInvalidState(err))
		assert.False(t, pkgerrors.IsServerClosed(err))
	})
}

func TestRouteError(t *testing.T) {
	err := &pkgerrors.RouteError{Method: "GET", Path: "/health"}
	assert.Equal(t, "route GET /health already registered", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrDuplicateRoute))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("port", "70000", "must be between 1 and 65535")
		assert.Equal(t, "validation failed for field port: must be between 1 and 65535", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad"}
		assert.Equal(t, "validation failed: bad", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("no such file")
	err := pkgerrors.NewConfigError("viper", "read config", base)
	assert.Equal(t, "configuration error in viper: read config", err.Error())
	assert.ErrorIs(t, err, base)

	err = pkgerrors.NewConfigError("", "missing", nil)
	assert.Equal(t, "configuration error: missing", err.Error())
}

func TestWrapResource(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapResource("load", "config", "", nil))

	base := errors.New("boom")
	err := pkgerrors.WrapResource("start", "server", ":3000", base)
	require.Error(t, err)
	assert.Equal(t, "failed to start server :3000: boom", err.Error())
	assert.ErrorIs(t, err, base)

	err = pkgerrors.WrapResource("load", "config", "", base)
	assert.Equal(t, "failed to load config: boom", err.Error())
}
