// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required fields
// or numeric minimums) defined in struct tags, and extracts validation
// errors into a format the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"cornerstore/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is the shared validator instance; validator.Validate caches
// struct metadata, so one instance serves the whole process.
var validate = validator.New()

// Struct runs struct-tag validation on v. Request types call this from
// their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - define a request struct with validator tags (`validate:"required"`)
//   - implement Validate() error that runs validation.Struct(req)
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params, query
//     params, and the request body.
//  2. payload.Validate() applies validation rules.
//  3. Failures become a 400 *errs.HTTPError with field-level errors.
//
// payload must be a pointer so echo's binder can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request payload", false, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors on failure.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator.ValidationErrors into
// user-friendly per-field messages.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: "payload",
			Error: err.Error(),
		})
		return "Validation failed", fieldErrors
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// For strings min is a length, for numbers a value.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "datetime":
			msg = fmt.Sprintf("must be a date in %s format", err.Param())

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
