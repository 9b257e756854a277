package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func RequiredField(field string) string {
	return fmt.Sprintf("%s is required", formatFieldName(field))
}

func InvalidField(field string) string {
	return fmt.Sprintf("%s is invalid", formatFieldName(field))
}

// TypeMismatch describes a value whose JSON shape does not fit the field.
func TypeMismatch(field string, want reflect.Type) string {
	return fmt.Sprintf("%s must be %s", formatFieldName(field), describeType(want))
}

// BodyTypeMismatch describes a request body whose top-level JSON value has
// the wrong type.
func BodyTypeMismatch(want reflect.Type) string {
	return fmt.Sprintf("Request body must be %s", describeType(want))
}

func UnknownField(field string) string {
	return fmt.Sprintf("%s is not a known field", field)
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Map, reflect.Struct:
		return "an object"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "a valid value"
	}
}

// MapBindError turns a request binding failure into a validation AppError
// with one sub-error per offending field.
func MapBindError(err error) *AppError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		subs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			switch e.Tag() {
			case "required":
				subs = append(subs, RequiredField(e.Field()))
			default:
				subs = append(subs, InvalidField(e.Field()))
			}
		}
		return Validation(subs...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return Validation(BodyTypeMismatch(typeErr.Type))
		}
		return Validation(TypeMismatch(typeErr.Field, typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Validation(fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset))
	}

	if errors.Is(err, io.EOF) {
		return Validation("Request body is required")
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return Validation("Malformed JSON: unexpected end of input")
	}

	return Validation(err.Error())
}
