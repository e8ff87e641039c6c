package handlers

import (
	"net/http"
	"strings"

	"github.com/goduckworks/duckworks"
	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/web/views"
)

// APIPrefix marks routes that answer errors in JSON.
const APIPrefix = "/api/"

// ErrorHandler renders handler errors: JSON for the API, an HTML page
// otherwise. HTTPError messages are shown for 4xx statuses; everything else
// becomes a generic server error.
func ErrorHandler(site views.Site) duckworks.ErrorHandler {
	return func(c duckworks.Context, err error) error {
		status, msg := http.StatusInternalServerError, MsgServerError
		if he := duckworks.AsHTTPError(err); he != nil && he.StatusCode() < http.StatusInternalServerError {
			status, msg = he.StatusCode(), he.Message
		}

		if status >= http.StatusInternalServerError {
			c.LogError("request failed", "error", err, "path", c.Request().URL.Path)
		}

		if strings.HasPrefix(c.Request().URL.Path, APIPrefix) {
			return c.JSON(status, contact.Response{OK: false, Error: msg})
		}
		if status == http.StatusNotFound {
			msg = "Page not found"
		}
		return c.Render(status, views.ErrorPage(site, status, msg))
	}
}

// NotFound is the app's fallback for unknown routes.
func NotFound(duckworks.Context) error {
	return duckworks.ErrNotFound("Not found")
}

// MethodNotAllowed is the app's fallback for known routes hit with another method.
func MethodNotAllowed(duckworks.Context) error {
	return duckworks.ErrMethodNotAllowed(MsgMethodNotAllowed)
}
