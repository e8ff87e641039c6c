package handlers

import (
	"errors"
	"net/http"

	"github.com/goduckworks/duckworks"
	"github.com/goduckworks/duckworks/contact"
	"github.com/goduckworks/duckworks/web/requests"
)

// Client-facing messages of the contact API.
const (
	MsgMissingFields    = "Missing required fields"
	MsgMissingAPIKey    = "Server not configured: RESEND_API_KEY missing"
	MsgMissingRecipient = "Server not configured: EMAIL_TO missing"
	MsgServerError      = "Server error"
	MsgMethodNotAllowed = "Method not allowed"
	MsgTooManyRequests  = "Too many requests"
)

// ContactAPI accepts quote requests at /api/contact.
type ContactAPI struct {
	service *contact.Service
	submit  []duckworks.Middleware
}

// NewContactAPI creates the handler. mw wraps the POST route only.
func NewContactAPI(svc *contact.Service, mw ...duckworks.Middleware) *ContactAPI {
	return &ContactAPI{service: svc, submit: mw}
}

// Routes implements duckworks.Handler. Other methods fall through to the
// app's method-not-allowed handler.
func (h *ContactAPI) Routes(r duckworks.Router) {
	r.GET("/api/contact", h.status)
	r.POST("/api/contact", h.create, h.submit...)
}

// status reports which settings are present without revealing them.
func (h *ContactAPI) status(c duckworks.Context) error {
	st := h.service.Status()
	return c.JSON(http.StatusOK, contact.Response{OK: true, Configured: &st})
}

func (h *ContactAPI) create(c duckworks.Context) error {
	var req requests.ContactRequest
	verrs, err := c.Bind(&req)
	if err != nil {
		return err
	}

	if req.Gotcha != "" {
		c.LogWarn("honeypot triggered", "ip", c.ClientIP())
		return c.JSON(http.StatusOK, contact.Response{OK: true})
	}
	if !verrs.IsEmpty() {
		return c.JSON(http.StatusBadRequest, failure(MsgMissingFields))
	}

	id, err := h.service.Submit(c, req.Submission())
	if err != nil {
		return h.submitError(c, err)
	}
	return c.JSON(http.StatusOK, contact.Response{OK: true, ID: id})
}

func (h *ContactAPI) submitError(c duckworks.Context, err error) error {
	switch {
	case errors.Is(err, contact.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, failure(MsgMissingFields))
	case errors.Is(err, contact.ErrMissingAPIKey):
		c.LogError("contact form is not configured", "missing", "RESEND_API_KEY")
		return c.JSON(http.StatusInternalServerError, failure(MsgMissingAPIKey))
	case errors.Is(err, contact.ErrMissingRecipient):
		c.LogError("contact form is not configured", "missing", "EMAIL_TO")
		return c.JSON(http.StatusInternalServerError, failure(MsgMissingRecipient))
	}
	if de := contact.AsDeliveryError(err); de != nil {
		return c.JSON(http.StatusInternalServerError, failure(de.Reason()))
	}
	return err
}

func failure(msg string) contact.Response {
	return contact.Response{OK: false, Error: msg}
}
