package validation

import (
	"strings"
)

// FieldError is one failed rule. Path is dotted, array indexes included
// ("ingredients.0.quantity"); an empty path marks an error on the whole input.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Errors is the ordered list of failures for one input
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		if fe.Path == "" {
			parts[i] = fe.Message
			continue
		}
		parts[i] = fe.Path + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Flattened groups messages by top level field
type Flattened struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// Flatten groups errors by the first path segment. Errors without a path
// become form errors.
func (e Errors) Flatten() Flattened {
	out := Flattened{FormErrors: []string{}, FieldErrors: map[string][]string{}}
	for _, fe := range e {
		if fe.Path == "" {
			out.FormErrors = append(out.FormErrors, fe.Message)
			continue
		}
		key, _, _ := strings.Cut(fe.Path, ".")
		out.FieldErrors[key] = append(out.FieldErrors[key], fe.Message)
	}
	return out
}
