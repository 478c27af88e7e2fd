package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name    *string `json:"name" validate:"required,notblank,max=5"`
	Email   *string `json:"email" validate:"required,notblank,email"`
	Message string  `json:"message,omitempty" validate:"required"`
}

func strPtr(s string) *string { return &s }

func TestFieldErrorsMissingAndBlank(t *testing.T) {
	v := New()
	err := v.Struct(&payload{Email: strPtr("")})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, []string{MsgRequired}, fields["name"])
	assert.Equal(t, []string{MsgBlank}, fields["email"])
	assert.Equal(t, []string{MsgBlank}, fields["message"])
}

func TestFieldErrorsFormatAndLength(t *testing.T) {
	v := New()
	err := v.Struct(&payload{
		Name:    strPtr("Augusta"),
		Email:   strPtr("not-an-email"),
		Message: "hi",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, []string{"Ensure this field has no more than 5 characters."}, fields["name"])
	assert.Equal(t, []string{MsgInvalidEmail}, fields["email"])
	assert.NotContains(t, fields, "message")
}

func TestFieldErrorsNonValidationError(t *testing.T) {
	fields := FieldErrors(errors.New("boom"))
	assert.Equal(t, map[string][]string{"non_field_errors": {"boom"}}, fields)
}

func TestTrimStrings(t *testing.T) {
	p := &payload{Name: strPtr("  Ada \n"), Message: "\tHello  "}
	TrimStrings(p)

	assert.Equal(t, "Ada", *p.Name)
	assert.Equal(t, "Hello", p.Message)
	assert.Nil(t, p.Email)

	assert.NotPanics(t, func() { TrimStrings(nil) })
	assert.NotPanics(t, func() { TrimStrings(strings.NewReader("x")) })
}
