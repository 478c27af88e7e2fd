package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired     = "This field is required."
	MsgNull         = "This field may not be null."
	MsgBlank        = "This field may not be blank."
	MsgInvalidEmail = "Enter a valid email address."
)

// FieldErrors converts validator.ValidationErrors into messages keyed by
// field name. Any other error is reported under "non_field_errors".
func FieldErrors(err error) map[string][]string {
	out := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}

	for _, e := range validationErrors {
		out[e.Field()] = append(out[e.Field()], formatSingleError(e))
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		if isNil(e.Value()) {
			return MsgRequired
		}
		return MsgBlank

	case "notblank":
		return MsgBlank

	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", param)

	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", param)
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", param)

	case "email":
		return MsgInvalidEmail

	default:
		return fmt.Sprintf("Invalid value (%s).", e.Tag())
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
