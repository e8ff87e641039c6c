package mailer

import (
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer(fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`<div>{{.Metadata.Title}}|{{.Content}}</div>`)},
		"msg.md": &fstest.MapFile{Data: []byte("---\nTitle: Quote\n---\n**Message:**\n{{md .Message}}\n")},
	})

	t.Run("escapes values and keeps line breaks", func(t *testing.T) {
		t.Parallel()

		res, err := r.Render("base.html", "msg.md", map[string]string{
			"Message": "line one\n# not a heading\n<b>bold</b>",
		})
		require.NoError(t, err)

		assert.Contains(t, res.HTML, "<div>Quote|")
		assert.Contains(t, res.HTML, "line one<br>")
		assert.Contains(t, res.HTML, "# not a heading<br>")
		assert.Contains(t, res.HTML, "&lt;b&gt;bold&lt;/b&gt;")
		assert.NotContains(t, res.HTML, "<h1>")
		assert.NotContains(t, res.HTML, "<b>")
		assert.Equal(t, "Quote", res.Metadata["Title"])
		assert.Contains(t, res.Markdown, `\# not a heading`)
	})

	t.Run("filter sees the converted body only", func(t *testing.T) {
		t.Parallel()

		var seen atomic.Value
		fr := NewRenderer(fstest.MapFS{
			"layouts/base.html": &fstest.MapFile{Data: []byte(`<div>{{.Content}}</div>`)},
			"msg.md":            &fstest.MapFile{Data: []byte("{{md .Message}}\n")},
		}, WithHTMLFilter(func(s string) string {
			seen.Store(s)
			return "[" + s + "]"
		}))

		res, err := fr.Render("base.html", "msg.md", map[string]string{"Message": "hi"})
		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>\n", seen.Load())
		assert.Equal(t, "<div>[<p>hi</p>\n]</div>", res.HTML)
	})

	t.Run("missing layout", func(t *testing.T) {
		t.Parallel()

		_, err := r.Render("nope.html", "msg.md", map[string]string{"Message": "x"})
		require.ErrorIs(t, err, ErrLayoutNotFound)
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := r.Render("base.html", "nope.md", nil)
		require.ErrorIs(t, err, ErrTemplateNotFound)
	})
}

type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

func TestRenderer_CachesParsedFiles(t *testing.T) {
	t.Parallel()

	cfs := &countingFS{FS: fstest.MapFS{
		"tpl/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"a.md":          &fstest.MapFile{Data: []byte("Hello {{md .}}")},
	}}
	r := NewRenderer(cfs, WithLayoutDir("tpl"))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Render("base.html", "a.md", "you")
			assert.NoError(t, err)
			assert.Equal(t, "<p>Hello you</p>\n", res.HTML)
		}()
	}
	wg.Wait()

	// Concurrent first renders may each read the file; later ones must not.
	before := cfs.opens.Load()
	_, err := r.Render("base.html", "a.md", "again")
	require.NoError(t, err)
	assert.Equal(t, before, cfs.opens.Load())
}

func TestRenderer_WithFuncs(t *testing.T) {
	t.Parallel()

	r := NewRenderer(fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"f.md":              &fstest.MapFile{Data: []byte(`{{shout "hi"}}`)},
	}, WithFuncs(map[string]any{"shout": func(s string) string { return s + "!" }}))

	res, err := r.Render("base.html", "f.md", nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi!</p>\n", res.HTML)
}
