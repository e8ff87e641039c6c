// Package validator reports field-level validation failures.
//
// Rules can be built in code and combined with [Apply]:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", req.Email),
//	    validator.MaxLenString("message", req.Message, 8000),
//	)
//
// or declared on struct fields and checked with [ValidateStruct]:
//
//	Name string `form:"name" validate:"required;max:2000"`
//
// Rules in a tag are separated by semicolons: required, min:N, max:N, len:N
// (rune counts) and oneof:a|b|c. Every failure carries a translation key and
// values so callers can localize messages with [ValidationErrors.Translate].
package validator
