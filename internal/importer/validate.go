package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/recall/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report file field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateImportSchema checks the schema before conversion and returns every
// problem found. knownUser, when non-nil, restricts the accepted user ids.
func ValidateImportSchema(schema *ImportSchema, knownUser func(string) bool) []error {
	var errs []error

	if err := validate.Struct(schema); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []error{err}
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}

	seen := make(map[string]bool, len(schema.Users))
	for i, u := range schema.Users {
		if u.ID == "" {
			continue
		}
		if seen[u.ID] {
			errs = append(errs, fmt.Errorf("users[%d].id: duplicate user %q", i, u.ID))
		}
		seen[u.ID] = true
		if knownUser != nil && !knownUser(u.ID) {
			errs = append(errs, fmt.Errorf("users[%d].id: %w: %q", i, domain.ErrUnknownUser, u.ID))
		}
	}

	return errs
}

func fieldError(fe validator.FieldError) error {
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", path)
	case "min":
		return fmt.Errorf("%s must have at least %s entries", path, fe.Param())
	case "datetime":
		return fmt.Errorf("%s: %w: %q (expected YYYY-MM-DD)", path, domain.ErrInvalidDateFormat, fe.Value())
	default:
		return fmt.Errorf("%s: failed %s validation", path, fe.Tag())
	}
}
