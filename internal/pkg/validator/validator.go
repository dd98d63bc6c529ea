package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	clockPattern     = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	requestIDPattern = regexp.MustCompile(`^opt_[0-9]+_[0-9a-f]{8}$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("request_id", func(fl validator.FieldLevel) bool {
		return requestIDPattern.MatchString(fl.Field().String())
	})
}

// Validate checks struct tags, including the custom "clock" and "request_id" tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Var validates a single value against a tag expression.
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func GetValidator() *validator.Validate {
	return validate
}
