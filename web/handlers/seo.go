package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/goduckworks/duckworks"
	"github.com/goduckworks/duckworks/pkg/cache"
	"github.com/goduckworks/duckworks/web/content"
)

const sitemapKey = "sitemap.xml"

// SitemapTTL is how long a rendered sitemap is reused.
const SitemapTTL = time.Hour

// SEO serves sitemap.xml and robots.txt.
type SEO struct {
	baseURL string
	content *content.Content
	cache   cache.Cache[[]byte]
	now     func() time.Time
}

// SEOOption configures SEO.
type SEOOption func(*SEO)

// WithClock replaces time.Now for sitemap dates.
func WithClock(now func() time.Time) SEOOption {
	return func(h *SEO) { h.now = now }
}

// NewSEO creates the handler. Rendered sitemaps are kept in store.
func NewSEO(baseURL string, c *content.Content, store cache.Cache[[]byte], opts ...SEOOption) *SEO {
	h := &SEO{baseURL: baseURL, content: c, cache: store, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements duckworks.Handler.
func (h *SEO) Routes(r duckworks.Router) {
	r.GET("/sitemap.xml", h.sitemap)
	r.GET("/robots.txt", h.robots)
}

func (h *SEO) sitemap(c duckworks.Context) error {
	body, err := cache.GetOrSet(c, h.cache, sitemapKey, func(context.Context) ([]byte, time.Duration, error) {
		b, err := h.content.SitemapXML(h.baseURL, h.now())
		return b, SitemapTTL, err
	})
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *SEO) robots(c duckworks.Context) error {
	return c.String(http.StatusOK, content.Robots(h.baseURL))
}
