package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one rejected field.
type ValidationError struct {
	FieldPath string
	Message   string
}

// ValidationErrors collects every rejected field of one
// configuration.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "validation failed with %d error(s)", len(ve))

	for _, err := range ve {
		fmt.Fprintf(&sb, "; %s: %s", err.FieldPath, err.Message)
	}

	return sb.String()
}

var validate = newValidator()

// newValidator reports fields by their toml key so messages
// match what the user wrote.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks every field against its tags.
func (cfg *Config) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	out := make(ValidationErrors, 0, len(fieldErrs))

	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			FieldPath: strings.TrimPrefix(fe.Namespace(), "Config."),
			Message:   describe(fe),
		})
	}

	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hostname_port":
		return fmt.Sprintf("%q is not a host:port address", fe.Value())
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
