// Package views renders the site's HTML pages as templ components.
//
// Components are written directly against templ.ComponentFunc; every value
// that comes from content or configuration goes through templ.EscapeString.
package views
