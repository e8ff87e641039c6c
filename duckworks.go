package duckworks

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/goduckworks/duckworks/internal"
	"github.com/goduckworks/duckworks/pkg/health"
)

type (
	// App owns the router and the server lifecycle.
	App = internal.App

	// Router is what handlers declare routes on.
	Router = internal.Router

	// Context gives handlers access to the request and response helpers.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc handles a request and may return an error.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc.
	Middleware = internal.Middleware

	// ErrorHandler renders errors returned by handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures an App.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures the health endpoints.
	HealthOption = internal.HealthOption

	// Component renders HTML; templ.Component satisfies it.
	Component = internal.Component

	// ValidationErrors is returned by Context.Bind for invalid input.
	ValidationErrors = internal.ValidationErrors

	// ResponseWriter tracks status and size of a response.
	ResponseWriter = internal.ResponseWriter

	// HTTPError carries a status code and a client-safe message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Extractor reads a value from the first matching request source.
	Extractor = internal.Extractor

	// ExtractorSource is one candidate source for an Extractor.
	ExtractorSource = internal.ExtractorSource
)

// New builds an App.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// WithMiddleware adds global middleware, outermost first.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers route-declaring handlers.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles serves subDir of fsys under pattern.
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets the handler for returned errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets the 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets the 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks mounts /health/live and /health/ready.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// WithLivenessPath overrides "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath overrides "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// Logger overrides the logger used for server lifecycle messages.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds the graceful shutdown. Default: 30s.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers fn to run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the parent context of the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnReady is called with the bound address once listening.
func OnReady(fn func(net.Addr)) RunOption {
	return internal.OnReady(fn)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithError attaches the underlying cause to an HTTPError.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// WithRequestID attaches the request id to an HTTPError.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

var (
	ErrBadRequest       = internal.ErrBadRequest
	ErrNotFound         = internal.ErrNotFound
	ErrMethodNotAllowed = internal.ErrMethodNotAllowed
	ErrTooManyRequests  = internal.ErrTooManyRequests
	ErrInternal         = internal.ErrInternal
	AsHTTPError         = internal.AsHTTPError
	IsHTTPError         = internal.IsHTTPError
)

// NewExtractor creates an Extractor over sources.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

var (
	FromHeader       = internal.FromHeader
	FromQuery        = internal.FromQuery
	FromParam        = internal.FromParam
	FromForwardedFor = internal.FromForwardedFor
	FromRemoteAddr   = internal.FromRemoteAddr
)
