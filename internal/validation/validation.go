// Package validation turns untrusted JSON payloads into typed, constrained
// inputs for the service layer.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateTimeLayout is the accepted shape of every date field.
const DateTimeLayout = time.RFC3339

var (
	validate = newValidator()

	idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// errorMessages maps validation tags to messages.
var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
	"oneof":    "The field '%s' must be one of %s.",
	"datetime": "The field '%s' must be an ISO-8601 datetime.",
	"id":       "The field '%s' must be a valid identifier.",
	"url":      "The field '%s' must be a valid URL.",
}

// Errors maps JSON field names to friendly messages.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = e[field]
	}
	return "validation failed: " + strings.Join(parts, " ")
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if ns, ok := field.Interface().(NullString); ok && ns.Valid {
			return ns.Value
		}
		return nil
	}, NullString{})
	if err := v.RegisterValidation("id", func(fl validator.FieldLevel) bool {
		return idPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func parseMessage(e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, e.Field())
		case 2:
			return fmt.Sprintf(msg, e.Field(), e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", e.Field(), e.Tag())
}

// Struct validates s and returns Errors keyed by JSON field name, or nil.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := make(Errors, len(fieldErrs))
	for _, e := range fieldErrs {
		out[e.Field()] = parseMessage(e)
	}
	return out
}

// decode unmarshals raw into dst and validates it.
func decode(raw []byte, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return Errors{"body": "The request body must be a JSON object: " + err.Error()}
	}
	return Struct(dst)
}

// parseTime converts a validated datetime field.
func parseTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(DateTimeLayout, *s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
