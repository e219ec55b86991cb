package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"leadhub/scope"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under the JSON field names clients actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct checks struct tag rules and folds the failures into a
// per-field ValidationError so handlers can surface field-level messages.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			fields[field] = "this field is required"
		case "min":
			fields[field] = "must be at least " + param + " characters"
		case "max":
			fields[field] = "must be at most " + param + " characters"
		case "email":
			fields[field] = "must be a valid email address"
		case "gte":
			fields[field] = "must be " + param + " or greater"
		default:
			fields[field] = "is invalid"
		}
	}

	return &scope.ValidationError{Fields: fields}
}
