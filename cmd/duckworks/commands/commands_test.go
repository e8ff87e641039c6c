package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/config"
	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/pkg/logger"
)

func TestCurrentSettings(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"RESEND_API_KEY":     "re_secret",
		"EMAIL_BCC":          "a@example.com, b@example.com",
		"CONTACT_RATE_LIMIT": "5",
	})
	require.NoError(t, err)

	s := currentSettings(cfg)
	assert.True(t, s.APIKey)
	assert.False(t, s.To)
	assert.False(t, s.From)
	assert.True(t, s.BCC)
	assert.False(t, s.SentryDSN)
	assert.False(t, s.RedisURL)
	assert.Equal(t, 5, s.RateLimit)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "re_secret")
	assert.Contains(t, string(raw), `"RESEND_API_KEY":true`)
}

func TestBuildSite(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"CONTACT_RATE_LIMIT": "1",
		"EMAIL_TO":           "office@goduckworks.com",
	})
	require.NoError(t, err)

	app, opts, err := buildSite(context.Background(), cfg, logger.NewNope())
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotEmpty(t, opts)

	t.Run("status reports presence only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp contact.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Configured)
		assert.False(t, resp.Configured.APIKey)
		assert.True(t, resp.Configured.To)
	})

	t.Run("rate limit applies to submissions", func(t *testing.T) {
		post := func() int {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ann"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)
			return rec.Code
		}
		assert.Equal(t, http.StatusBadRequest, post())
		assert.Equal(t, http.StatusTooManyRequests, post())
	})

	t.Run("pages render", func(t *testing.T) {
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSubmitCommand(t *testing.T) {
	t.Parallel()

	t.Run("success prints id", func(t *testing.T) {
		t.Parallel()

		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/contact", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"id":"msg_42"}`))
		}))
		defer srv.Close()

		var out bytes.Buffer
		cmd := New()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"submit",
			"--url", srv.URL + "/",
			"--name", "Ann",
			"--email", "ann@example.com",
			"--service", "repair",
			"--message", "Leaking corner",
		})
		require.NoError(t, cmd.Execute())

		assert.Contains(t, out.String(), contact.SentMessage)
		assert.Contains(t, out.String(), "id: msg_42")
		assert.Equal(t, "Ann", got["name"])
		assert.Equal(t, "Repair", got["service"])
		assert.Equal(t, "Leaking corner", got["message"])
	})

	t.Run("failure reports provider message", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"ok":false,"error":"Server not configured: EMAIL_TO missing"}`))
		}))
		defer srv.Close()

		var out bytes.Buffer
		cmd := New()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"submit", "--url", srv.URL, "--name", "Ann", "--email", "a@b.c", "--message", "hi"})

		err := cmd.Execute()
		require.ErrorIs(t, err, contact.ErrSubmitFailed)
		assert.Contains(t, out.String(), "EMAIL_TO missing")
		assert.Contains(t, out.String(), contact.ErrorMessage)
	})
}
