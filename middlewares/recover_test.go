package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/internal"
	"github.com/goduckworks/duckworks/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("converts panic values to PanicError", func(t *testing.T) {
		t.Parallel()

		type custom struct{ Code int }
		values := []any{"string panic", errors.New("error panic"), 42, custom{Code: 500}}

		for _, v := range values {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			ctx := newTestContext(httptest.NewRecorder(), req)

			handler := middlewares.Recover()(func(internal.Context) error {
				panic(v)
			})

			pe := middlewares.AsPanicError(handler(ctx))
			require.NotNil(t, pe)
			require.Equal(t, v, pe.Value)
			require.NotEmpty(t, pe.Stack)
			require.Equal(t, http.MethodPost, pe.Method)
			require.Equal(t, "/api/contact", pe.Path)
		}
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		want := errors.New("normal error")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover()(func(internal.Context) error { return want })
		require.ErrorIs(t, handler(ctx), want)

		handler = middlewares.Recover()(func(internal.Context) error { return nil })
		require.NoError(t, handler(ctx))
	})

	t.Run("disable print stack skips capture", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(
			middlewares.WithRecoverStackSize(8192),
			middlewares.WithRecoverDisablePrintStack(),
		)(func(internal.Context) error {
			panic("test")
		})

		pe := middlewares.AsPanicError(handler(ctx))
		require.NotNil(t, pe)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack is capped at configured size", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover(middlewares.WithRecoverStackSize(100))(func(internal.Context) error {
			panic("test")
		})

		pe := middlewares.AsPanicError(handler(ctx))
		require.NotNil(t, pe)
		require.NotEmpty(t, pe.Stack)
		require.LessOrEqual(t, len(pe.Stack), 100)
	})

	t.Run("re-panics ErrAbortHandler", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Recover()(func(internal.Context) error {
			panic(http.ErrAbortHandler)
		})

		require.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = handler(ctx) })
	})
}
