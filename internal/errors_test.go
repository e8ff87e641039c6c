package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()

		got := internal.AsHTTPError(internal.ErrNotFound("page not found"))
		require.NotNil(t, got)
		assert.Equal(t, http.StatusNotFound, got.StatusCode())
		assert.Equal(t, "Not Found", got.StatusText())
	})

	t.Run("wrapped keeps fields", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp: refused")
		err := fmt.Errorf("handler: %w", internal.ErrInternal("Server error",
			internal.WithError(cause), internal.WithRequestID("req-1")))

		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		assert.Equal(t, "Server error", got.Message)
		assert.Equal(t, "req-1", got.RequestID)
		assert.ErrorIs(t, err, cause)
		assert.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated and nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, internal.AsHTTPError(errors.New("plain")))
		assert.Nil(t, internal.AsHTTPError(nil))
		assert.False(t, internal.IsHTTPError(nil))
	})
}

func TestHTTPError_Constructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *internal.HTTPError
		code int
	}{
		{internal.ErrBadRequest("x"), http.StatusBadRequest},
		{internal.ErrNotFound("x"), http.StatusNotFound},
		{internal.ErrMethodNotAllowed("x"), http.StatusMethodNotAllowed},
		{internal.ErrTooManyRequests("x"), http.StatusTooManyRequests},
		{internal.ErrInternal("x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, "x", tt.err.Error())
	}
}
