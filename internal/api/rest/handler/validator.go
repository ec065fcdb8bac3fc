package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo.Validator. Field errors
// are reported with their JSON names.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

func describeFieldErrors(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid request"
	}

	fe := errs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + ": field required"
	case "email":
		return field + ": value is not a valid email address"
	case "len":
		return field + ": must contain exactly " + fe.Param() + " item"
	case "min":
		return field + ": must be at least " + fe.Param() + " characters"
	case "max":
		return field + ": must be at most " + fe.Param() + " characters"
	case "gte":
		return field + ": must be greater than or equal to " + fe.Param()
	case "gt":
		return field + ": must be greater than " + fe.Param()
	default:
		return field + ": failed " + fe.Tag() + " validation"
	}
}
