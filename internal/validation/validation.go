// Package validation turns request bodies and query strings into validated
// request types. It registers JSON names with gin's validator so reported
// paths match the wire format.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register configures gin's default validator. Safe to call many times.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
				if name == "-" {
					continue
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// FromBindingError converts an error from gin's ShouldBind* into Errors
func FromBindingError(err error) Errors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(Errors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Path: pathOf(fe.Namespace()), Message: messageFor(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Errors{{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("Expected %s, received %s", kindName(typeErr.Type), typeErr.Value),
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Errors{{Message: "Malformed JSON body"}}
	}
	if errors.Is(err, io.EOF) {
		return Errors{{Message: "Request body is required"}}
	}

	return Errors{{Message: err.Error()}}
}

// pathOf drops the root struct name and rewrites [i] as .i
func pathOf(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	rest = strings.ReplaceAll(rest, "[", ".")
	return strings.ReplaceAll(rest, "]", "")
}

func messageFor(fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("Array must contain at least %s element(s)", fe.Param())
		}
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "max":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("Array must contain at most %s element(s)", fe.Param())
		}
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Number must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	case "unique":
		return fmt.Sprintf("Duplicate %s values are not allowed", snakeCase(fe.Param()))
	}
	return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	}
	return t.Kind().String()
}

func snakeCase(name string) string {
	var b strings.Builder
	var prev rune
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 && unicode.IsLower(prev) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}
