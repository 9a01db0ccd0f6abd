package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"tzdate/shared/failure"
	"tzdate/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerTimezoneValidation accepts identifiers known to the installed IANA database.
func registerTimezoneValidation(field val.FieldLevel) bool {
	_, err := timezone.LoadLocation(field.Field().String())

	return err == nil
}

// registerPatternValidation accepts strings that compile as a format pattern.
func registerPatternValidation(field val.FieldLevel) bool {
	_, err := timezone.CompilePattern(field.Field().String())

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := validate.RegisterValidation("timezone", registerTimezoneValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("pattern", registerPatternValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
