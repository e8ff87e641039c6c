package content_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/web/content"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := content.Load()
	require.NoError(t, err)
	require.Len(t, c.Cities, 2)
	require.Len(t, c.Services, 6)

	rr, ok := c.City("round-rock-tx")
	require.True(t, ok)
	assert.Equal(t, "Round Rock", rr.City)
	assert.Equal(t, "TX", rr.State)
	assert.Equal(t, []string{"Forest Creek", "Teravista", "Behrens Ranch"}, rr.Neighborhoods)
	require.Len(t, rr.FAQs, 1)
	assert.Equal(t, `5" or 6" here?`, rr.FAQs[0].Question)
	require.NotNil(t, rr.Testimonial)
	assert.Equal(t, "K. Ramirez, Round Rock", rr.Testimonial.Author)

	waco, ok := c.City("waco-tx")
	require.True(t, ok)
	assert.Nil(t, waco.Testimonial)
	assert.Empty(t, waco.FAQs)

	_, ok = c.City("austin-tx")
	assert.False(t, ok)

	assert.Equal(t, "Seamless Aluminum Gutters", c.Services[0].Title)
	assert.Len(t, c.Services[0].Details, 3)
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cities string
		err    error
	}{
		{
			name:   "bad slug",
			cities: "- {slug: Waco TX, city: Waco, state: TX}",
			err:    content.ErrInvalidCity,
		},
		{
			name:   "reserved slug",
			cities: "- {slug: contact, city: Waco, state: TX}",
			err:    content.ErrInvalidCity,
		},
		{
			name:   "missing state",
			cities: "- {slug: waco-tx, city: Waco}",
			err:    content.ErrInvalidCity,
		},
		{
			name:   "duplicate",
			cities: "- {slug: waco-tx, city: Waco, state: TX}\n- {slug: waco-tx, city: Waco, state: TX}",
			err:    content.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := content.Parse([]byte(tt.cities), nil)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := content.Parse([]byte("- {slug: waco-tx, city: Waco, state: TX, zip: 76701}"), nil)
		require.Error(t, err)
	})

	t.Run("empty documents", func(t *testing.T) {
		t.Parallel()
		c, err := content.Parse(nil, nil)
		require.NoError(t, err)
		assert.Empty(t, c.Cities)
	})
}

func TestSitemap(t *testing.T) {
	t.Parallel()

	c, err := content.Load()
	require.NoError(t, err)

	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	set := c.Sitemap("https://www.goduckworks.com/", now)
	require.Len(t, set.URLs, 6)

	assert.Equal(t, content.SitemapURL{
		Loc: "https://www.goduckworks.com", LastMod: "2026-03-04", ChangeFreq: "weekly", Priority: "1.0",
	}, set.URLs[0])
	assert.Equal(t, "https://www.goduckworks.com/services", set.URLs[1].Loc)
	assert.Equal(t, "0.7", set.URLs[3].Priority)
	assert.Equal(t, content.SitemapURL{
		Loc: "https://www.goduckworks.com/round-rock-tx", LastMod: "2026-03-04", ChangeFreq: "monthly", Priority: "0.6",
	}, set.URLs[4])

	body, err := c.SitemapXML("https://www.goduckworks.com", now)
	require.NoError(t, err)
	xml := string(body)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://www.goduckworks.com/waco-tx</loc>")
}

func TestRobots(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"User-agent: *\nAllow: /\nSitemap: https://example.com/sitemap.xml\n",
		content.Robots("https://example.com/"))
}
