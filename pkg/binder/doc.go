// Package binder copies request data into structs by their form tags.
//
// Each constructor returns a function with the signature
// func(*http.Request, any) error. [Form] reads url-encoded and multipart
// bodies, [Query] reads the URL query, [JSON] reads a JSON object and
// [Auto] picks JSON or Form from the Content-Type header.
//
// JSON values are assigned by the same form tags as form values. Numbers and
// booleans take their string form, arrays are joined with commas, objects
// keep their JSON text and null leaves the field untouched. Bodies larger than [MaxBodySize] are
// rejected.
package binder
