package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"resort/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enumerable is satisfied by the status and availability types of the domain models.
type enumerable interface {
	Valid() bool
}

func validateEnum(field val.FieldLevel) bool {
	if !field.Field().CanInterface() {
		return false
	}

	enum, ok := field.Field().Interface().(enumerable)
	if !ok {
		return false
	}

	return enum.Valid()
}

// jsonName reports fields by their JSON key so messages match the request body.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	if err := validate.RegisterValidation("enum", validateEnum); err != nil {
		panic(err)
	}

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return toFailure(err)
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return toFailure(err)
	}

	return nil
}
