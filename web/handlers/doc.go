// Package handlers serves the site's pages and the contact API.
package handlers
