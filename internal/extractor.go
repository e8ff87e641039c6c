package internal

import (
	"net"
	"strings"
)

// ExtractorSource reads one candidate value from the request.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries sources in order and returns the first non-empty value.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor over sources.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false).
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := strings.TrimSpace(c.Header(name))
		return v, v != ""
	}
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		return v, v != ""
	}
}

// FromParam reads a URL path parameter.
func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Param(name)
		return v, v != ""
	}
}

// FromForwardedFor reads the left-most address of X-Forwarded-For.
func FromForwardedFor() ExtractorSource {
	return func(c Context) (string, bool) {
		first, _, _ := strings.Cut(c.Header("X-Forwarded-For"), ",")
		ip := net.ParseIP(strings.TrimSpace(first))
		if ip == nil {
			return "", false
		}
		return ip.String(), true
	}
}

// FromRemoteAddr reads the host part of the connection's remote address.
func FromRemoteAddr() ExtractorSource {
	return func(c Context) (string, bool) {
		addr := c.Request().RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			return host, host != ""
		}
		return addr, addr != ""
	}
}

var clientIP = NewExtractor(
	FromForwardedFor(),
	FromHeader("X-Real-IP"),
	FromRemoteAddr(),
)
