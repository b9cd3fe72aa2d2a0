// Package errs defines the error types returned to API clients.
//
// Every failure a handler or service produces is expressed as an
// *HTTPError so the global error handler can serialize a consistent
// JSON error shape with a machine-readable code, a human-readable
// message, and optional field-level validation errors.
package errs

import "strings"

// FieldError represents a field-level validation error.
//
// Example:
//
//	{ "field": "quantity", "error": "must be at least 0" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "quantity").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type serialized to API clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the client UI show Message verbatim instead of a generic one.
//   - Errors: per-field validation errors, when applicable.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError.
//
// It matches on type only, not on Code/Status, so
// errors.Is(err, &HTTPError{}) can be used as a category check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
