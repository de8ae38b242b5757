package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"marketplace/config"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"marketplace/shared/phone"
	"reflect"
	"slices"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// stringRule adapts a string predicate into a validation func.
func stringRule(ok func(string) bool) val.Func {
	return func(field val.FieldLevel) bool {
		str, isString := field.Field().Interface().(string)

		return isString && ok(str)
	}
}

var rules = map[string]val.Func{
	"empty": func(field val.FieldLevel) bool { return field.Field().IsZero() },
	"phone": stringRule(func(str string) bool {
		return phone.Valid(str, config.Get().OTP.DefaultCountryCode)
	}),
	"apptype": stringRule(func(str string) bool {
		return slices.Contains(constant.AppTypes, str)
	}),
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		field, msg := message(err)

		return failure.BadRequestField(field, msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		_, msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
