package binder

import "errors"

var (
	ErrNotStructPointer = errors.New("binder: target must be a non-nil pointer to a struct")
	ErrUnsupportedType  = errors.New("binder: unsupported content type")
	ErrMalformedBody    = errors.New("binder: malformed request body")
	ErrBodyTooLarge     = errors.New("binder: request body too large")
	ErrUnsupportedField = errors.New("binder: unsupported field type")
)
