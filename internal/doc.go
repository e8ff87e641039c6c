// Package internal holds the HTTP core behind the duckworks package: the
// App, its chi-backed Router, the per-request Context and the server runtime.
//
// Import "github.com/goduckworks/duckworks" instead; it re-exports everything
// handlers need.
//
// Handlers declare routes through the Handler interface and return errors
// instead of writing failure responses themselves:
//
//	func (h *ContactHandler) Routes(r internal.Router) {
//	    r.GET("/api/contact", h.status)
//	    r.POST("/api/contact", h.submit)
//	}
//
// A returned error goes to the ErrorHandler configured with WithErrorHandler
// unless the handler already wrote a response.
//
// Context embeds context.Context, so it can be handed to anything that takes
// a standard context. Bind copies a JSON or form body into a struct, runs the
// sanitize tags and then the validate tags:
//
//	var req requests.ContactRequest
//	verrs, err := c.Bind(&req)
//
// The runtime listens, serves until SIGINT or SIGTERM, then shuts the server
// down and runs the registered shutdown hooks within ShutdownTimeout.
package internal
