package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "known" accepts enum values that report themselves as recognised.
	_ = v.RegisterValidation("known", func(fl validator.FieldLevel) bool {
		k, ok := fl.Field().Interface().(interface{ Known() bool })
		return ok && k.Known()
	})
	return v
}

// Validate checks the struct tags of a wire type.
func Validate(s any) error {
	return validate.Struct(s)
}
