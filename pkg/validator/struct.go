package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagName is the struct tag read by ValidateStruct.
const TagName = "validate"

// ValidateStruct checks the validate tags of v's exported string fields.
// Field names in errors come from the form or json tag, falling back to the
// Go field name. It returns ValidationErrors for failed rules and a plain
// error wrapping ErrInvalidRule for malformed tags.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrNotStructPtr
	}

	var rules []Rule
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag := sf.Tag.Get(TagName)
		if !sf.IsExported() || tag == "" || tag == "-" {
			continue
		}
		if sf.Type.Kind() != reflect.String {
			return fmt.Errorf("%w: %s is not a string", ErrInvalidRule, sf.Name)
		}

		fr, err := parseTag(fieldName(sf), rv.Field(i).String(), tag)
		if err != nil {
			return fmt.Errorf("%s: %w", sf.Name, err)
		}
		rules = append(rules, fr...)
	}
	return Apply(rules...)
}

func parseTag(field, value, tag string) ([]Rule, error) {
	var rules []Rule
	for part := range strings.SplitSeq(tag, ";") {
		name, arg, _ := strings.Cut(strings.TrimSpace(part), ":")
		switch name {
		case "":
		case "required":
			rules = append(rules, RequiredString(field, value))
		case "min", "max", "len":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%q", ErrInvalidRule, name, arg)
			}
			switch name {
			case "min":
				rules = append(rules, MinLenString(field, value, n))
			case "max":
				rules = append(rules, MaxLenString(field, value, n))
			default:
				rules = append(rules, LenString(field, value, n))
			}
		case "oneof":
			rules = append(rules, OneOfString(field, value, strings.Split(arg, "|")...))
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidRule, name)
		}
	}
	return rules, nil
}

func fieldName(sf reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		if name, _, _ := strings.Cut(sf.Tag.Get(key), ","); name != "" && name != "-" {
			return name
		}
	}
	return sf.Name
}
