package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/RafaelEmery/rafood-api/internal/apperror"
	"github.com/RafaelEmery/rafood-api/internal/model"
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that knows the catalog's day, day_type and clock rules
func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(validate, "day", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDay(fl.Field().String())
		return err == nil
	})
	mustRegister(validate, "day_type", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDayType(fl.Field().String())
		return err == nil
	})
	mustRegister(validate, "clock", func(fl validator.FieldLevel) bool {
		_, err := model.ParseClock(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: validate}
}

func mustRegister(validate *validator.Validate, tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks i against its validate tags
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperror.Validation(err.Error(), err)
	}

	details := make([]apperror.Detail, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details = append(details, apperror.Detail{
			Field:   fieldError.Field(),
			Message: describe(fieldError),
		})
	}
	return apperror.Validation("Request validation failed", err, details...)
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "url":
		return "value is not a valid URL"
	case "max":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("must have at most %s characters", fieldError.Param())
		}
		return "must be less than or equal to " + fieldError.Param()
	case "min":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s characters", fieldError.Param())
		}
		return "must be greater than or equal to " + fieldError.Param()
	case "len":
		return fmt.Sprintf("must have exactly %s characters", fieldError.Param())
	case "gt":
		return "must be greater than " + fieldError.Param()
	case "day":
		return "must be one of monday, tuesday, wednesday, thursday, friday, saturday, sunday"
	case "day_type":
		return "must be one of weekday, weekend, holiday"
	case "clock":
		return "must be a valid time in HH:MM:SS format"
	default:
		return fmt.Sprintf("failed on the %s rule", fieldError.Tag())
	}
}
