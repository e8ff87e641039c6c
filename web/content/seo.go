package content

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// StaticPages are the fixed pages listed in the sitemap, home first.
var StaticPages = []string{"", "/services", "/about", "/contact"}

// URLSet is a sitemap document.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one sitemap entry.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap lists the static pages (home 1.0, others 0.7, weekly) followed by
// every city page (0.6, monthly).
func (c *Content) Sitemap(baseURL string, now time.Time) URLSet {
	base := strings.TrimRight(baseURL, "/")
	lastMod := now.UTC().Format(time.DateOnly)

	set := URLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range StaticPages {
		priority := "0.7"
		if p == "" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc: base + p, LastMod: lastMod, ChangeFreq: "weekly", Priority: priority,
		})
	}
	for _, city := range c.Cities {
		set.URLs = append(set.URLs, SitemapURL{
			Loc: base + "/" + city.Slug, LastMod: lastMod, ChangeFreq: "monthly", Priority: "0.6",
		})
	}
	return set
}

// SitemapXML renders the sitemap document.
func (c *Content) SitemapXML(baseURL string, now time.Time) ([]byte, error) {
	body, err := xml.MarshalIndent(c.Sitemap(baseURL, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("content: sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt allowing everything and pointing at the sitemap.
func Robots(baseURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
}
