package middlewares

import (
	"errors"
	"fmt"
)

// PanicError is a panic recovered while serving a request.
type PanicError struct {
	Value  any
	Stack  []byte // nil when stack capture is off
	Method string
	Path   string
}

func (e *PanicError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic serving %s %s: %v", e.Method, e.Path, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsPanicError reports whether err carries a *PanicError.
func IsPanicError(err error) bool {
	return AsPanicError(err) != nil
}

// AsPanicError returns the *PanicError in err's chain, or nil.
func AsPanicError(err error) *PanicError {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}
