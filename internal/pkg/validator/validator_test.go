package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type quoteForm struct {
	Email    string `json:"email" validate:"required,email"`
	Postcode string `json:"postcode" validate:"required"`
}

func TestValidatePasses(t *testing.T) {
	assert.Nil(t, Validate(&quoteForm{Email: "jordan@acme.example", Postcode: "E1 6AN"}))
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	errs := Validate(&quoteForm{Email: "not-an-email"})
	assert.Equal(t, map[string]string{
		"email":    "email",
		"postcode": "required",
	}, errs)
}
