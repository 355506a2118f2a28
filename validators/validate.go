package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	phonePattern = regexp.MustCompile(`^\+?[0-9 ().-]+$`)
	clockLayouts = []string{"15:04:05", "15:04"}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so errors line up with the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !phonePattern.MatchString(s) {
			return false
		}
		digits := 0
		for _, r := range s {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		return digits >= 7
	})

	v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseClock accepts HH:MM:SS and HH:MM.
func ParseClock(s string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// FieldErrors maps a json field name to its messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// DecodeErrors turns a JSON type mismatch on a named field into a field
// error. It returns nil for any other decode failure.
func DecodeErrors(err error) FieldErrors {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	errs := FieldErrors{}
	switch typeErr.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		errs.Add(typeErr.Field, "A valid integer is required.")
	case reflect.String:
		errs.Add(typeErr.Field, "Not a valid string.")
	default:
		errs.Add(typeErr.Field, "Invalid value.")
	}
	return errs
}

// Struct validates req and translates failures into per-field messages.
// overrides replaces the message for every failure on the named field.
func Struct(req any, overrides map[string]string) FieldErrors {
	errs := FieldErrors{}

	err := validate.Struct(req)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("non_field_errors", err.Error())
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := overrides[field]; ok && fe.Tag() != "required" {
			errs.Add(field, msg)
			continue
		}
		errs.Add(field, message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "phone":
		return "Enter a valid phone number."
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "clocktime":
		return "Time has wrong format. Use one of these formats instead: hh:mm[:ss]."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

// Trim strips surrounding whitespace in place.
func Trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// TrimOptional trims in place and drops values that end up blank.
func TrimOptional(fields ...**string) {
	for _, f := range fields {
		if *f == nil {
			continue
		}
		v := strings.TrimSpace(**f)
		if v == "" {
			*f = nil
			continue
		}
		*f = &v
	}
}
