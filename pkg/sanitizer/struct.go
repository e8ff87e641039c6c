package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag read by SanitizeStruct.
const TagName = "sanitize"

var (
	ErrNotStructPointer = errors.New("sanitizer: target must be a non-nil pointer to a struct")
	ErrUnknownOperation = errors.New("sanitizer: unknown operation")
)

type operation func(string) string

var operations = map[string]operation{
	"trim":        strings.TrimSpace,
	"strip_html":  StripHTML,
	"html":        SanitizeHTML,
	"lower":       strings.ToLower,
	"upper":       strings.ToUpper,
	"title":       Title,
	"single_line": SingleLine,
}

// SanitizeStruct applies the operations named in each field's sanitize tag.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if fv.Kind() == reflect.Struct {
			if err := sanitizeValue(fv); err != nil {
				return err
			}
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "" || tag == "-" || fv.Kind() != reflect.String {
			continue
		}

		out, err := apply(fv.String(), tag)
		if err != nil {
			return fmt.Errorf("%s: %w", field.Name, err)
		}
		fv.SetString(out)
	}
	return nil
}

func apply(s, tag string) (string, error) {
	for op := range strings.SplitSeq(tag, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}

		name, arg, _ := strings.Cut(op, ":")
		if name == "trunc" {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return "", fmt.Errorf("%w: trunc:%q", ErrUnknownOperation, arg)
			}
			s = Truncate(s, n)
			continue
		}

		fn, ok := operations[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
		}
		s = fn(s)
	}
	return s, nil
}
