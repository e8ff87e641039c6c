package validator

import (
	"errors"
	"strings"
)

var (
	ErrValidation   = errors.New("validator: validation failed")
	ErrInvalidRule  = errors.New("validator: invalid rule")
	ErrNotStructPtr = errors.New("validator: target must be a pointer to a struct")
)

// ValidationError is a single failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failures in rule order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Field + ": " + v.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool { return target == ErrValidation }

// IsEmpty reports whether there are no failures.
func (e ValidationErrors) IsEmpty() bool { return len(e) == 0 }

// Has reports whether field failed any rule.
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages for field.
func (e ValidationErrors) Get(field string) []string {
	var out []string
	for _, v := range e {
		if v.Field == field {
			out = append(out, v.Message)
		}
	}
	return out
}

// Fields returns the failed field names without duplicates.
func (e ValidationErrors) Fields() []string {
	var out []string
	for _, v := range e {
		if !contains(out, v.Field) {
			out = append(out, v.Field)
		}
	}
	return out
}

// Translate rewrites every message that has a translation key using fn.
func (e ValidationErrors) Translate(fn func(key string, values map[string]any) string) {
	if fn == nil {
		return
	}
	for i := range e {
		if e[i].TranslationKey != "" {
			e[i].Message = fn(e[i].TranslationKey, e[i].TranslationValues)
		}
	}
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the ValidationErrors inside err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
