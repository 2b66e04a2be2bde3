package finance

import "strings"

// ClientError represents an error that should be exposed to the client over
// the API. It maps to HTTP 400.
type ClientError string

// Error implements the error interface for ClientError.
func (c ClientError) Error() string { return string(c) }

// NotFoundError is returned when a requested resource does not exist. It
// maps to HTTP 404.
type NotFoundError string

// Error implements the error interface for NotFoundError.
func (e NotFoundError) Error() string { return string(e) }

// IsNonEmpty reports whether s has anything besides whitespace.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
