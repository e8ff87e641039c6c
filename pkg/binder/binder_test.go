package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/pkg/binder"
)

type quote struct {
	Name    string   `form:"name"`
	Phone   string   `form:"phone"`
	Gotcha  string   `form:"_gotcha"`
	Count   int      `form:"count"`
	Urgent  bool     `form:"urgent"`
	Tags    []string `form:"tag"`
	Ignored string
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("coerces scalars to strings", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
			`{"name":"Jane","phone":4694314515,"_gotcha":"","count":"3","urgent":true,"extra":"x","Ignored":"no"}`))
		var q quote
		require.NoError(t, binder.JSON()(r, &q))

		assert.Equal(t, "Jane", q.Name)
		assert.Equal(t, "4694314515", q.Phone)
		assert.Equal(t, 3, q.Count)
		assert.True(t, q.Urgent)
		assert.Empty(t, q.Ignored)
	})

	t.Run("null leaves field untouched", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":null}`))
		q := quote{Name: "keep"}
		require.NoError(t, binder.JSON()(r, &q))
		assert.Equal(t, "keep", q.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{"", "{", "[1,2]", `"text"`} {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var q quote
			require.ErrorIs(t, binder.JSON()(r, &q), binder.ErrMalformedBody, body)
		}
	})

	t.Run("flattens arrays and objects", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":["a",1,null,true],"phone":{"first":"J"}}`))
		var q quote
		require.NoError(t, binder.JSON()(r, &q))
		assert.Equal(t, "a,1,,true", q.Name)
		assert.Equal(t, `{"first":"J"}`, q.Phone)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		big := `{"name":"` + strings.Repeat("a", int(binder.MaxBodySize)) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		var q quote
		require.ErrorIs(t, binder.JSON()(r, &q), binder.ErrBodyTooLarge)
	})

	t.Run("bad target", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		require.ErrorIs(t, binder.JSON()(r, quote{}), binder.ErrNotStructPointer)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()

		form := url.Values{"name": {"Jane"}, "tag": {"a", "b"}, "count": {"2"}}
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var q quote
		require.NoError(t, binder.Form()(r, &q))
		assert.Equal(t, "Jane", q.Name)
		assert.Equal(t, []string{"a", "b"}, q.Tags)
		assert.Equal(t, 2, q.Count)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Jane"))
		require.NoError(t, mw.WriteField("phone", "555"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var q quote
		require.NoError(t, binder.Form()(r, &q))
		assert.Equal(t, "Jane", q.Name)
		assert.Equal(t, "555", q.Phone)
	})

	t.Run("bad int", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("count=many"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var q quote
		require.ErrorIs(t, binder.Form()(r, &q), binder.ErrMalformedBody)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?name=Jane&urgent=false", nil)
	var q quote
	require.NoError(t, binder.Query()(r, &q))
	assert.Equal(t, "Jane", q.Name)
	assert.False(t, q.Urgent)
}

func TestAuto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantName    string
		wantErr     error
	}{
		{"json", "application/json; charset=utf-8", `{"name":"J"}`, "J", nil},
		{"form", "application/x-www-form-urlencoded", "name=F", "F", nil},
		{"xml", "application/xml", "<name>X</name>", "", binder.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)

			var q quote
			err := binder.Auto()(r, &q)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, q.Name)
		})
	}
}
