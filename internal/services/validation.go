package services

import (
	"errors"
	"reflect"
	"strings"

	"highwaybus/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm runs struct tags and reports the first failing field as a ValidationError.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := "is required"
		if fe.Tag() != "required" {
			msg = "is invalid"
		}
		return domain.ValidationError{Field: fe.Field(), Msg: msg, Err: err}
	}
	return domain.ValidationError{Msg: "invalid form", Err: err}
}
