package handlers

import (
	"net/http"

	"github.com/goduckworks/duckworks"
	"github.com/goduckworks/duckworks/web/content"
	"github.com/goduckworks/duckworks/web/views"
)

// Pages serves the content pages.
type Pages struct {
	site    views.Site
	content *content.Content
}

// NewPages creates the page handler.
func NewPages(site views.Site, c *content.Content) *Pages {
	return &Pages{site: site, content: c}
}

// Routes implements duckworks.Handler.
func (h *Pages) Routes(r duckworks.Router) {
	r.GET("/", h.home)
	r.GET("/services", h.services)
	r.GET("/about", h.about)
	r.GET("/contact", h.contact)
	r.GET("/{city}", h.city)
}

func (h *Pages) home(c duckworks.Context) error {
	return c.Render(http.StatusOK, views.Home(h.site, h.content.Services))
}

func (h *Pages) services(c duckworks.Context) error {
	return c.Render(http.StatusOK, views.Services(h.site, h.content.Services))
}

func (h *Pages) about(c duckworks.Context) error {
	return c.Render(http.StatusOK, views.About(h.site))
}

func (h *Pages) contact(c duckworks.Context) error {
	return c.Render(http.StatusOK, views.Contact(h.site))
}

func (h *Pages) city(c duckworks.Context) error {
	city, ok := h.content.City(c.Param("city"))
	if !ok {
		return duckworks.ErrNotFound("Page not found")
	}
	return c.Render(http.StatusOK, views.City(h.site, city))
}
