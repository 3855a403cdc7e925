package validation

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"github.com/lukaszlop/ketoggler/internal/types"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// listQueryKeys maps every accepted parameter to the type named in coercion errors
var listQueryKeys = map[string]string{
	"kcal":      "number",
	"max_carbs": "number",
	"allergens": "string",
	"random":    "boolean",
	"page":      "integer",
	"page_size": "integer",
}

// BindListQuery validates and coerces the query string of GET /recipes.
// Unknown parameters are rejected.
func BindListQuery(values url.Values) (types.ListRecipesQuery, error) {
	Register()

	q := types.ListRecipesQuery{Page: DefaultPage, PageSize: DefaultPageSize}
	var errs Errors

	var unknown []string
	for key := range values {
		if _, ok := listQueryKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		errs = append(errs, FieldError{
			Message: fmt.Sprintf("Unrecognized key(s) in object: '%s'", strings.Join(unknown, "', '")),
		})
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if _, ok := listQueryKeys[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	// bind one key at a time so coercion failures name their parameter
	for _, key := range keys {
		if key == "allergens" {
			q.Allergens = SplitList(strings.Join(values[key], ","))
			continue
		}
		if err := binding.MapFormWithTag(&q, map[string][]string{key: values[key]}, "form"); err != nil {
			errs = append(errs, FieldError{
				Path:    key,
				Message: fmt.Sprintf("Expected %s, received %q", listQueryKeys[key], values.Get(key)),
			})
		}
	}
	if len(errs) > 0 {
		return q, errs
	}

	if err := binding.Validator.ValidateStruct(&q); err != nil {
		return q, FromBindingError(err)
	}
	return q, nil
}

// SplitList splits a comma separated list, trimming entries and dropping empty ones
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
