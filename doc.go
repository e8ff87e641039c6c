// Package duckworks is the HTTP framework of the Duck Works site: a thin layer
// over chi with error-returning handlers, route-declaring handler types and a
// graceful server runtime.
//
//	app := duckworks.New(
//	    duckworks.WithLogger(log),
//	    duckworks.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	    ),
//	    duckworks.WithErrorHandler(handlers.ErrorHandler(log)),
//	    duckworks.WithHandlers(
//	        handlers.NewPages(site),
//	        handlers.NewContact(service),
//	    ),
//	)
//	err := app.Run(":8080", duckworks.ShutdownTimeout(30*time.Second))
//
// # Handlers
//
// A handler type declares its routes and returns errors from its methods:
//
//	func (h *Contact) Routes(r duckworks.Router) {
//	    r.GET("/api/contact", h.status)
//	    r.POST("/api/contact", h.submit)
//	}
//
//	func (h *Contact) status(c duckworks.Context) error {
//	    return c.JSON(http.StatusOK, h.service.Status())
//	}
//
// Errors reach the ErrorHandler unless the response was already written.
// Return an [HTTPError] to choose the status and the message the client sees.
//
// # Binding
//
// [Context].Bind reads a JSON or form body by Content-Type, applies the
// sanitize tags of pkg/sanitizer and then the validate tags of pkg/validator:
//
//	type ContactRequest struct {
//	    Name string `form:"name" sanitize:"single_line,trim,trunc:2000" validate:"required"`
//	}
//
// # Shutdown
//
// Run blocks until SIGINT or SIGTERM, stops accepting requests, waits for
// in-flight ones up to ShutdownTimeout and then runs the ShutdownHook
// functions in order.
package duckworks
