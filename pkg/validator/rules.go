package validator

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule is a check and the error reported when it does not hold.
type Rule struct {
	Check bool
	Error ValidationError
}

// Apply evaluates rules and returns ValidationErrors for those that fail.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func rule(ok bool, field, msg, key string, values map[string]any) Rule {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return Rule{
		Check: ok,
		Error: ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// RequiredString fails when value is empty after trimming spaces.
func RequiredString(field, value string) Rule {
	return rule(strings.TrimSpace(value) != "", field, "is required", "validation.required", nil)
}

// MinLenString fails when value has fewer than n runes.
func MinLenString(field, value string, n int) Rule {
	return rule(utf8.RuneCountInString(value) >= n, field,
		fmt.Sprintf("must be at least %d characters long", n),
		"validation.min_length", map[string]any{"min": n})
}

// MaxLenString fails when value has more than n runes.
func MaxLenString(field, value string, n int) Rule {
	return rule(utf8.RuneCountInString(value) <= n, field,
		fmt.Sprintf("must be at most %d characters long", n),
		"validation.max_length", map[string]any{"max": n})
}

// LenString fails unless value has exactly n runes.
func LenString(field, value string, n int) Rule {
	return rule(utf8.RuneCountInString(value) == n, field,
		fmt.Sprintf("must be exactly %d characters long", n),
		"validation.exact_length", map[string]any{"length": n})
}

// OneOfString fails when value is not one of allowed. Empty values pass;
// combine with RequiredString to forbid them.
func OneOfString(field, value string, allowed ...string) Rule {
	ok := value == "" || contains(allowed, value)
	return rule(ok, field,
		"must be one of: "+strings.Join(allowed, ", "),
		"validation.one_of", map[string]any{"values": allowed})
}

// MinNum fails when value < minimum.
func MinNum[T cmp.Ordered](field string, value, minimum T) Rule {
	return rule(value >= minimum, field,
		fmt.Sprintf("must be at least %v", minimum),
		"validation.min", map[string]any{"min": minimum})
}

// MaxNum fails when value > maximum.
func MaxNum[T cmp.Ordered](field string, value, maximum T) Rule {
	return rule(value <= maximum, field,
		fmt.Sprintf("must be at most %v", maximum),
		"validation.max", map[string]any{"max": maximum})
}
