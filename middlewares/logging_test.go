package middlewares_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/internal"
	"github.com/goduckworks/duckworks/middlewares"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    internal.HandlerFunc
		wantStatus float64
		wantLevel  string
	}{
		{
			name:       "written response",
			handler:    func(c internal.Context) error { return c.String(http.StatusCreated, "ok") },
			wantStatus: http.StatusCreated,
			wantLevel:  "INFO",
		},
		{
			name:       "nothing written",
			handler:    func(internal.Context) error { return nil },
			wantStatus: http.StatusOK,
			wantLevel:  "INFO",
		},
		{
			name:       "http error",
			handler:    func(internal.Context) error { return internal.ErrBadRequest("Missing required fields") },
			wantStatus: http.StatusBadRequest,
			wantLevel:  "WARN",
		},
		{
			name:       "plain error",
			handler:    func(internal.Context) error { return errors.New("boom") },
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))
			ctx.logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			_ = middlewares.RequestLogger()(tt.handler)(ctx)

			line := logLine(t, &buf)
			require.Equal(t, "request", line["msg"])
			require.Equal(t, tt.wantLevel, line["level"])
			require.Equal(t, "POST", line["method"])
			require.Equal(t, "/api/contact", line["path"])
			require.Equal(t, tt.wantStatus, line["status"])
			require.Contains(t, line, "duration")
		})
	}
}
