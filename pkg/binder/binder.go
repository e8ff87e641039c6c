package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// MaxBodySize caps request bodies read by Form and JSON.
const MaxBodySize int64 = 1 << 20

// TagName is the struct tag naming the request key of a field.
const TagName = "form"

// Func binds r into v.
type Func func(r *http.Request, v any) error

// Form binds url-encoded or multipart form bodies.
func Form() Func {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}
		r.Body = http.MaxBytesReader(nil, r.Body, MaxBodySize)

		var err error
		if mediaType(r) == "multipart/form-data" {
			err = r.ParseMultipartForm(MaxBodySize)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return bodyError(err)
		}
		return assign(v, valuesSource(r.PostForm))
	}
}

// Query binds URL query parameters.
func Query() Func {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}
		return assign(v, valuesSource(r.URL.Query()))
	}
}

// JSON binds a JSON object body.
func JSON() Func {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}

		var obj map[string]any
		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodySize))
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil {
			return bodyError(err)
		}

		values := make(map[string]string, len(obj))
		for k, raw := range obj {
			if s, ok := jsonString(raw); ok {
				values[k] = s
			}
		}
		return assign(v, mapSource(values))
	}
}

// Auto binds JSON for application/json requests and form data otherwise.
func Auto() Func {
	form, js := Form(), JSON()
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case "application/json":
			return js(r, v)
		case "", "application/x-www-form-urlencoded", "multipart/form-data":
			return form(r, v)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedType, r.Header.Get("Content-Type"))
		}
	}
}

func mediaType(r *http.Request) string {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return strings.ToLower(mt)
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Join(ErrBodyTooLarge, err)
	}
	return errors.Join(ErrMalformedBody, err)
}

func checkTarget(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return nil
}

// jsonString flattens a decoded JSON value. Arrays join their elements with
// commas and objects keep their JSON text; null reports false.
func jsonString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i], _ = jsonString(e)
		}
		return strings.Join(parts, ","), true
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

type source interface {
	lookup(key string) ([]string, bool)
}

type valuesSource url.Values

func (s valuesSource) lookup(key string) ([]string, bool) {
	v, ok := s[key]
	return v, ok && len(v) > 0
}

type mapSource map[string]string

func (s mapSource) lookup(key string) ([]string, bool) {
	v, ok := s[key]
	return []string{v}, ok
}

func assign(v any, src source) error {
	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get(TagName), ",")
		if !sf.IsExported() || name == "" || name == "-" {
			continue
		}

		vals, ok := src.lookup(name)
		if !ok {
			continue
		}
		if err := setField(rv.Field(i), vals); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func setField(fv reflect.Value, vals []string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(vals[0])
	case reflect.Bool:
		b, err := strconv.ParseBool(vals[0])
		if err != nil {
			return errors.Join(ErrMalformedBody, err)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(vals[0], 10, fv.Type().Bits())
		if err != nil {
			return errors.Join(ErrMalformedBody, err)
		}
		fv.SetInt(n)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return ErrUnsupportedField
		}
		fv.Set(reflect.ValueOf(append([]string(nil), vals...)).Convert(fv.Type()))
	default:
		return ErrUnsupportedField
	}
	return nil
}
